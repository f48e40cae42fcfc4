package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"sockpredict/internal/domain/service/calendar"
	"sockpredict/internal/domain/service/pricing"
	"sockpredict/internal/domain/service/trend"
	"sockpredict/internal/server"
	"sockpredict/pkg/rest"
	"sockpredict/pkg/tests"
)

// blackFridayNoon is a Tuesday covered by the default calendar.
var blackFridayNoon = time.Date(2026, time.November, 24, 12, 0, 0, 0, time.UTC) //nolint:gochecknoglobals

func newTestAPI(t *testing.T) tests.APIClient {
	t.Helper()

	engine, err := pricing.NewEngine(pricing.DefaultConfig())
	require.NoError(t, err)

	priceServer := server.NewPriceServer(engine, trend.NewSampler(engine), calendar.Default()).
		WithClock(func() time.Time { return blackFridayNoon })

	router := chi.NewRouter()
	server.NewServer(priceServer).RegisterRoutes(router)

	testServer := httptest.NewServer(router)
	t.Cleanup(testServer.Close)

	return tests.NewAPIClient(testServer.URL, testServer.Client())
}

func TestPostV1Price(t *testing.T) {
	rq := require.New(t)

	api := newTestAPI(t)
	ctx := context.Background()

	testCases := []struct {
		name    string
		request string
		price   string
		savings string
		event   string
	}{
		{
			name:    "Tuesday afternoon in July",
			request: `{"day_of_week": 1, "hour": 14, "month": 7}`,
			price:   "3.75", savings: "2.25", event: "none",
		},
		{
			name:    "Black Friday at Friday noon",
			request: `{"day_of_week": 4, "hour": 12, "month": 11, "event": "black_friday"}`,
			price:   "3.00", savings: "3.00", event: "black_friday",
		},
		{
			name:    "Back-to-school Monday morning",
			request: `{"day_of_week": 0, "hour": 8, "month": 8, "event": "back_to_school"}`,
			price:   "9.25", savings: "0.00", event: "back_to_school",
		},
		{
			name:    "Zero values are valid, not missing",
			request: `{"day_of_week": 0, "hour": 0, "month": 1}`,
			price:   "6.00", savings: "0.00", event: "none",
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(*testing.T) {
			var quote rest.Quote

			resp, err := api.PostJSON(ctx, "/v1/price", nil, tc.request, &quote, nil)
			rq.NoError(err)
			rq.Equal(http.StatusOK, resp.StatusCode)

			rq.Equal(tc.price, quote.Price)
			rq.Equal(tc.savings, quote.Savings)
			rq.Equal("6.00", quote.BasePrice)
			rq.Equal(tc.event, quote.Event)
			rq.Empty(quote.AsOf)
		})
	}
}

func TestPostV1PriceErrors(t *testing.T) {
	rq := require.New(t)

	api := newTestAPI(t)
	ctx := context.Background()

	testCases := []struct {
		name    string
		request string
		code    rest.ErrorCode
	}{
		{
			name:    "Missing hour",
			request: `{"day_of_week": 1, "month": 7}`,
			code:    "ValidationError",
		},
		{
			name:    "Malformed JSON",
			request: `{"day_of_week": `,
			code:    "ValidationError",
		},
		{
			name:    "Hour out of range",
			request: `{"day_of_week": 1, "hour": 24, "month": 7}`,
			code:    "InvalidTimePoint",
		},
		{
			name:    "Month out of range",
			request: `{"day_of_week": 1, "hour": 10, "month": 0}`,
			code:    "InvalidTimePoint",
		},
		{
			name:    "Unknown event",
			request: `{"day_of_week": 1, "hour": 10, "month": 7, "event": "flash_sale"}`,
			code:    "UnknownEvent",
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(*testing.T) {
			var errResp rest.Error

			resp, err := api.PostJSON(ctx, "/v1/price", nil, tc.request, nil, &errResp)
			rq.NoError(err)
			rq.Equal(http.StatusBadRequest, resp.StatusCode)
			rq.Equal(tc.code, errResp.Code)
		})
	}
}

func TestGetV1PriceNow(t *testing.T) {
	rq := require.New(t)

	api := newTestAPI(t)
	ctx := context.Background()

	var quote rest.Quote

	resp, err := api.Get(ctx, "/v1/price/now", nil, &quote, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	// Tuesday noon in November under the calendar's Black Friday entry.
	rq.Equal("black_friday", quote.Event)
	rq.Equal("3.00", quote.Price)
	rq.Equal(1, quote.Time.DayOfWeek)
	rq.Equal(12, quote.Time.Hour)
	rq.Equal(11, quote.Time.Month)
	rq.Equal("2026-11-24T12:00:00Z", quote.AsOf)
}

func TestGetV1PriceNowEventOverride(t *testing.T) {
	rq := require.New(t)

	api := newTestAPI(t)
	ctx := context.Background()

	var quote rest.Quote

	resp, err := api.Get(ctx, "/v1/price/now?event=none", nil, &quote, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	rq.Equal("none", quote.Event)
	rq.Equal("6.50", quote.Price)

	var errResp rest.Error

	resp, err = api.Get(ctx, "/v1/price/now?event=mystery", nil, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(rest.ErrorCode("UnknownEvent"), errResp.Code)
}

func TestGetV1TrendHourly(t *testing.T) {
	rq := require.New(t)

	api := newTestAPI(t)
	ctx := context.Background()

	var hourly rest.HourlyTrend

	resp, err := api.Get(ctx, "/v1/trend/hourly?day_of_week=1&month=7", nil, &hourly, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	rq.Len(hourly.Points, 24)
	for hour, point := range hourly.Points {
		rq.Equal(hour, point.Hour)
		rq.Equal("Tuesday", point.Day)
	}

	rq.Equal(13, hourly.Best.Hour)
	rq.Equal("3.75", hourly.Best.Price)
	rq.Equal("3.75", hourly.Cheapest.Price)
	rq.Equal(9, hourly.Priciest.Hour)
	rq.Equal("5.75", hourly.Priciest.Price)
}

func TestGetV1TrendHourlyMissingParams(t *testing.T) {
	rq := require.New(t)

	api := newTestAPI(t)
	ctx := context.Background()

	testCases := []struct {
		name     string
		endpoint string
	}{
		{name: "No parameters", endpoint: "/v1/trend/hourly"},
		{name: "Missing month", endpoint: "/v1/trend/hourly?day_of_week=1"},
		{name: "Non-integer day", endpoint: "/v1/trend/hourly?day_of_week=tuesday&month=7"},
		{name: "Day out of range", endpoint: "/v1/trend/hourly?day_of_week=9&month=7"},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(*testing.T) {
			var errResp rest.Error

			resp, err := api.Get(ctx, tc.endpoint, nil, nil, &errResp)
			rq.NoError(err)
			rq.Equal(http.StatusBadRequest, resp.StatusCode)
			rq.NotEmpty(errResp.Code)
		})
	}
}

func TestGetV1TrendWeekly(t *testing.T) {
	rq := require.New(t)

	api := newTestAPI(t)
	ctx := context.Background()

	var weekly rest.WeeklyTrend

	resp, err := api.Get(ctx, "/v1/trend/weekly?hour=8&month=8", nil, &weekly, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	rq.Len(weekly.Points, 7)
	rq.Equal("Monday", weekly.Points[0].Day)
	rq.Equal("6.75", weekly.Points[0].Price)
	rq.Equal("5.25", weekly.Points[1].Price)
	rq.Equal(1, weekly.Best.DayOfWeek)
}

func TestGetV1TrendHeatmap(t *testing.T) {
	rq := require.New(t)

	api := newTestAPI(t)
	ctx := context.Background()

	var heatmap rest.Heatmap

	resp, err := api.Get(ctx, "/v1/trend/heatmap?month=7", nil, &heatmap, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	rq.Len(heatmap.Rows, 7)
	for day, row := range heatmap.Rows {
		rq.Equal(day, row.DayOfWeek)
		rq.Len(row.Prices, 24)
	}

	rq.Equal("Monday", heatmap.Rows[0].Day)
	rq.Equal("3.75", heatmap.MinPrice)
	rq.Equal("7.25", heatmap.MaxPrice)
	rq.Equal("3.75", heatmap.Rows[1].Prices[13])
	rq.Equal("7.25", heatmap.Rows[0].Prices[9])
}

func TestGetV1Recommendation(t *testing.T) {
	rq := require.New(t)

	api := newTestAPI(t)
	ctx := context.Background()

	var rec rest.Recommendation

	resp, err := api.Get(ctx, "/v1/recommendation?month=7", nil, &rec, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	rq.Equal("Tuesday", rec.Day)
	rq.Equal(13, rec.Hour)
	rq.Equal("3.75", rec.Price)
	rq.Equal("2.25", rec.Savings)
	rq.Equal("37.50", rec.SavingsPercent)
}

func TestGetDashboard(t *testing.T) {
	rq := require.New(t)

	engine, err := pricing.NewEngine(pricing.DefaultConfig())
	rq.NoError(err)

	router := chi.NewRouter()
	server.NewServer(
		server.NewPriceServer(engine, trend.NewSampler(engine), calendar.Default()),
	).RegisterRoutes(router)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	rq.Equal(http.StatusOK, recorder.Code)
	rq.Equal("text/html; charset=utf-8", recorder.Header().Get("Content-Type"))
	rq.Contains(recorder.Body.String(), "Crew Sock Price Predictor")
}
