package worker

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"sockpredict/internal/domain/entity"
	"sockpredict/internal/domain/service/calendar"
	"sockpredict/internal/domain/service/pricing"
	"sockpredict/internal/metrics"
	"sockpredict/pkg/contextx"
	"sockpredict/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// SpotWatcher re-quotes the current wall-clock moment on an interval and
// publishes it to the spot price gauge. Purely observational.
type SpotWatcher struct {
	engine   *pricing.Engine
	calendar *calendar.Calendar
	interval time.Duration

	now  func() time.Time
	last decimal.Decimal
}

func NewSpotWatcher(
	engine *pricing.Engine,
	cal *calendar.Calendar,
	interval time.Duration,
) *SpotWatcher {
	return &SpotWatcher{
		engine:   engine,
		calendar: cal,
		interval: interval,
		now:      time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (w *SpotWatcher) WithClock(now func() time.Time) *SpotWatcher {
	w.now = now
	return w
}

func (w *SpotWatcher) Run(ctx context.Context) error {
	logger(ctx).Info("spot watcher started", "interval", w.interval.String())

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.observe(ctx)

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("spot watcher stopped")
			return nil
		case <-ticker.C:
			w.observe(ctx)
		}
	}
}

func (w *SpotWatcher) observe(ctx context.Context) {
	now := w.now()

	quote, err := w.engine.Quote(entity.TimePointOf(now), w.calendar.EventOn(now))
	if err != nil {
		logger(ctx).Error("spot quote failed", logx.Error(err))
		return
	}

	metrics.SpotPrice.Set(quote.Price.InexactFloat64())

	if !quote.Price.Equal(w.last) {
		logger(ctx).Info("spot price changed",
			logx.FieldPrice, quote.Price.StringFixed(2),
			logx.FieldEvent, quote.Event.String(),
		)
		w.last = quote.Price
	}
}
