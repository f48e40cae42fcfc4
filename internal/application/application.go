package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"sockpredict/internal/config"
	"sockpredict/internal/domain/service/calendar"
	"sockpredict/internal/domain/service/pricing"
	"sockpredict/internal/domain/service/trend"
	"sockpredict/internal/server"
	"sockpredict/internal/worker"
	"sockpredict/pkg/application/modules"
	"sockpredict/pkg/contextx"
	"sockpredict/pkg/logx"
	"sockpredict/pkg/middlewarex"
)

func Run(ctx context.Context, log *slog.Logger) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	ctx = contextx.WithLogger(ctx, log.With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	))

	// 2. Pricing engine
	engine, err := pricing.NewEngine(pricing.Config{
		BasePrice:  decimal.NewFromFloat(cfg.Pricing.BasePrice),
		FloorPrice: decimal.NewFromFloat(cfg.Pricing.FloorPrice),
		Rules:      pricing.DefaultRules(),
	})
	if err != nil {
		return fmt.Errorf("pricing.NewEngine: %w", err)
	}

	// 3. Event calendar
	cal := calendar.Default()
	if cfg.Pricing.CalendarPath != "" {
		cal, err = calendar.Load(cfg.Pricing.CalendarPath)
		if err != nil {
			return fmt.Errorf("calendar.Load: %w", err)
		}
		log.Info("event calendar loaded", "path", cfg.Pricing.CalendarPath)
	}

	// 4. HTTP API
	srv := server.NewServer(
		server.NewPriceServer(engine, trend.NewSampler(engine), cal),
	)

	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, cfg.HTTP.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.HTTP.LogFieldMaxLen),
	)
	srv.RegisterRoutes(router)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.Address,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	// 5. Modules
	g, ctx := errgroup.WithContext(ctx)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.Address,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.Address,
	}.Run(ctx, g)

	modules.HTTPServer{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, httpServer)

	watcher := worker.NewSpotWatcher(engine, cal, cfg.Pricing.SpotInterval)

	g.Go(func() error {
		return watcher.Run(ctx)
	})

	return g.Wait()
}
