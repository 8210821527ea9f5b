package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"driverpay/internal/auth"
	"driverpay/internal/domain/payroll"
	"driverpay/internal/platform/config"
	"driverpay/internal/platform/metrics"
	"driverpay/internal/transport/http/api"
	payrollhandler "driverpay/internal/transport/http/handlers/payroll"
	"driverpay/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	Metrics *metrics.Collector
	Service *payroll.Service
	Router  http.Handler
}

func New(cfg config.Config) *App {
	collector := metrics.New()
	service := payroll.NewService(payroll.ServiceConfig{
		Drivers:            cfg.Drivers,
		Currency:           cfg.Currency,
		SheetHeaderRow:     cfg.SheetHeaderRow,
		DelimitedHeaderRow: cfg.DelimitedHeaderRow,
	}, collector)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.SecureHeaders(cfg.IsProduction()))
	router.Use(middleware.AccessLog(slog.Default()))
	router.Use(middleware.Metrics(collector))
	router.Use(chimw.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RequireToken(cfg.JWTSecret, auth.ScopeCompute))
		r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

		payrollHandler := payrollhandler.NewHandler(service)
		payrollHandler.RegisterRoutes(r)
	})

	return &App{Config: cfg, Metrics: collector, Service: service, Router: router}
}

// Run serves the API until ctx is cancelled, then drains in-flight requests
// for at most cfg.ShutdownTimeout.
func Run(ctx context.Context, cfg config.Config) error {
	app := New(cfg)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("driverpay server listening", "addr", cfg.Addr, "env", cfg.Environment, "auth", cfg.JWTSecret != "")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down", "timeout", cfg.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
