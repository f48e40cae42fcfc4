package server

import (
	"fmt"
	"net/http"
	"time"

	"git.appkode.ru/pub/go/failure"

	"sockpredict/internal/domain"
	"sockpredict/internal/domain/entity"
	"sockpredict/internal/domain/service/calendar"
	"sockpredict/internal/domain/service/pricing"
	"sockpredict/internal/domain/service/trend"
	"sockpredict/internal/metrics"
	"sockpredict/pkg/httpx/reply"
	"sockpredict/pkg/httpx/req"
	"sockpredict/pkg/rest"
)

type PriceServer struct {
	engine   *pricing.Engine
	sampler  trend.Sampler
	calendar *calendar.Calendar
	now      func() time.Time
}

func NewPriceServer(
	engine *pricing.Engine,
	sampler trend.Sampler,
	cal *calendar.Calendar,
) PriceServer {
	return PriceServer{
		engine:   engine,
		sampler:  sampler,
		calendar: cal,
		now:      time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (s PriceServer) WithClock(now func() time.Time) PriceServer {
	s.now = now
	return s
}

func (s PriceServer) postV1Price(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.PriceRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	event, err := entity.ParseEventTag(request.Event)
	if err != nil {
		return domainError(err)
	}

	tp := entity.TimePoint{
		Hour:      *request.Hour,
		DayOfWeek: *request.DayOfWeek,
		Month:     *request.Month,
	}

	quote, err := s.engine.Quote(tp, event)
	if err != nil {
		return domainError(err)
	}

	metrics.PriceEvaluations.WithLabelValues(event.String()).Inc()

	reply.JSON(ctx, w, http.StatusOK, newRESTQuote(quote))

	return nil
}

func (s PriceServer) getV1PriceNow(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	now := s.now()

	event := s.calendar.EventOn(now)
	if raw := r.URL.Query().Get("event"); raw != "" {
		parsed, err := entity.ParseEventTag(raw)
		if err != nil {
			return domainError(err)
		}
		event = parsed
	}

	quote, err := s.engine.Quote(entity.TimePointOf(now), event)
	if err != nil {
		return domainError(err)
	}

	metrics.PriceEvaluations.WithLabelValues(event.String()).Inc()

	response := newRESTQuote(quote)
	response.AsOf = now.Format(time.RFC3339)

	reply.JSON(ctx, w, http.StatusOK, response)

	return nil
}

func (s PriceServer) getV1TrendHourly(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	dayOfWeek, err := req.QueryInt(r, "day_of_week")
	if err != nil {
		return fmt.Errorf("req.QueryInt: %w", err)
	}

	month, err := req.QueryInt(r, "month")
	if err != nil {
		return fmt.Errorf("req.QueryInt: %w", err)
	}

	event, err := queryEvent(r)
	if err != nil {
		return err
	}

	series, err := s.sampler.SampleHourly(dayOfWeek, month, event)
	if err != nil {
		return domainError(err)
	}

	best, err := trend.FindBestWindow(series, s.engine.BasePrice())
	if err != nil {
		return domainError(err)
	}

	cheapest, priciest, err := trend.Extremes(series)
	if err != nil {
		return domainError(err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.HourlyTrend{
		Points:   newRESTSeries(series),
		Best:     newRESTRecommendation(best),
		Cheapest: newRESTPricePoint(cheapest),
		Priciest: newRESTPricePoint(priciest),
	})

	return nil
}

func (s PriceServer) getV1TrendWeekly(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	hour, err := req.QueryInt(r, "hour")
	if err != nil {
		return fmt.Errorf("req.QueryInt: %w", err)
	}

	month, err := req.QueryInt(r, "month")
	if err != nil {
		return fmt.Errorf("req.QueryInt: %w", err)
	}

	event, err := queryEvent(r)
	if err != nil {
		return err
	}

	series, err := s.sampler.SampleWeekly(hour, month, event)
	if err != nil {
		return domainError(err)
	}

	best, err := trend.FindBestWindow(series, s.engine.BasePrice())
	if err != nil {
		return domainError(err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.WeeklyTrend{
		Points: newRESTSeries(series),
		Best:   newRESTRecommendation(best),
	})

	return nil
}

func (s PriceServer) getV1TrendHeatmap(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	month, err := req.QueryInt(r, "month")
	if err != nil {
		return fmt.Errorf("req.QueryInt: %w", err)
	}

	event, err := queryEvent(r)
	if err != nil {
		return err
	}

	series, err := s.sampler.SampleHeatmap(month, event)
	if err != nil {
		return domainError(err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTHeatmap(series))

	return nil
}

func (s PriceServer) getV1Recommendation(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	month, err := req.QueryInt(r, "month")
	if err != nil {
		return fmt.Errorf("req.QueryInt: %w", err)
	}

	event, err := queryEvent(r)
	if err != nil {
		return err
	}

	series, err := s.sampler.SampleHeatmap(month, event)
	if err != nil {
		return domainError(err)
	}

	best, err := trend.FindBestWindow(series, s.engine.BasePrice())
	if err != nil {
		return domainError(err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTRecommendation(best))

	return nil
}

func queryEvent(r *http.Request) (entity.EventTag, error) {
	event, err := entity.ParseEventTag(r.URL.Query().Get("event"))
	if err != nil {
		return entity.EventNone, domainError(err)
	}
	return event, nil
}

// domainError converts an AppError into a failure the reply layer maps to
// a status code. All domain codes here are caller mistakes, hence 400.
func domainError(err error) error {
	if code, ok := domain.GetCode(err); ok {
		return failure.NewInvalidArgumentErrorFromError(err, failure.WithCode(code))
	}
	return err
}
