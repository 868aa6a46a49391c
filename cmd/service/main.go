package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "marketplace/internal/app"
	"marketplace/internal/handlers/rest/cart_count_get"
	"marketplace/internal/handlers/rest/cart_get"
	"marketplace/internal/handlers/rest/cart_item_delete"
	"marketplace/internal/handlers/rest/cart_item_post"
	"marketplace/internal/handlers/rest/cart_item_put"
	"marketplace/internal/handlers/rest/checkout_post"
	"marketplace/internal/handlers/rest/delivery_accept_post"
	"marketplace/internal/handlers/rest/delivery_cancel_post"
	"marketplace/internal/handlers/rest/delivery_complete_post"
	"marketplace/internal/handlers/rest/delivery_reject_post"
	"marketplace/internal/handlers/rest/delivery_request_get"
	"marketplace/internal/handlers/rest/delivery_requests_get"
	"marketplace/internal/handlers/rest/delivery_start_post"
	"marketplace/internal/handlers/rest/healthcheck_head"
	"marketplace/internal/handlers/rest/notification_preferences_get"
	"marketplace/internal/handlers/rest/notification_preferences_put"
	"marketplace/internal/handlers/rest/notification_read_post"
	"marketplace/internal/handlers/rest/notifications_count_get"
	"marketplace/internal/handlers/rest/notifications_get"
	"marketplace/internal/handlers/rest/notifications_read_all_post"
	"marketplace/internal/handlers/rest/order_get"
	"marketplace/internal/handlers/rest/order_status_post"
	"marketplace/internal/handlers/rest/orders_get"
	"marketplace/internal/handlers/rest/payment_order_post"
	"marketplace/internal/handlers/rest/ping_get"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/dotenv"
	metrics_system "marketplace/internal/pkg/metrics"
	"marketplace/internal/pkg/middlewares/graceful_shutdown"
	"marketplace/internal/pkg/middlewares/identity"
	"marketplace/internal/pkg/middlewares/metrics"
	"marketplace/internal/pkg/middlewares/rate_limiter"
	"marketplace/internal/pkg/middlewares/timeout"
	"marketplace/internal/pkg/postgres"
	"marketplace/internal/pkg/redisclient"
	"marketplace/pkg/logger"
	"marketplace/pkg/logger/zap_adapter"
	"marketplace/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting marketplace application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	redisClient, err := redisclient.New(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		err := redisClient.Close()
		if err != nil {
			runLog.Error("failed to close Redis connection",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	if err := businessApp.ServiceNotification.SeedTemplates(ctx); err != nil {
		return fmt.Errorf("notification templates: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Use(identity.Middleware())
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/cart", cart_get.New(log, app.ServiceCart)).Methods("GET")
	router.Handle("/cart/items", cart_item_post.New(log, app.ServiceCart)).Methods("POST")
	router.Handle("/cart/items/{id}", cart_item_put.New(log, app.ServiceCart)).Methods("PUT")
	router.Handle("/cart/items/{id}", cart_item_delete.New(log, app.ServiceCart)).Methods("DELETE")
	router.Handle("/cart/count", cart_count_get.New(log, app.ServiceCart)).Methods("GET")

	router.Handle("/checkout", checkout_post.New(log, app.ServiceOrder)).Methods("POST")
	router.Handle("/payment/order", payment_order_post.New(log, app.ServiceOrder)).Methods("POST")
	router.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods("GET")
	router.Handle("/orders/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	router.Handle("/orders/{id}/status", order_status_post.New(log, app.ServiceOrder)).Methods("POST")

	router.Handle("/delivery/requests", delivery_requests_get.New(log, app.ServiceDelivery)).Methods("GET")
	router.Handle("/delivery/requests/{id}", delivery_request_get.New(log, app.ServiceDelivery)).Methods("GET")
	router.Handle("/delivery/requests/{id}/accept", delivery_accept_post.New(log, app.ServiceDelivery)).Methods("POST")
	router.Handle("/delivery/requests/{id}/reject", delivery_reject_post.New(log, app.ServiceDelivery)).Methods("POST")
	router.Handle("/delivery/requests/{id}/start", delivery_start_post.New(log, app.ServiceDelivery)).Methods("POST")
	router.Handle("/delivery/requests/{id}/complete", delivery_complete_post.New(log, app.ServiceDelivery)).Methods("POST")
	router.Handle("/delivery/requests/{id}/cancel", delivery_cancel_post.New(log, app.ServiceDelivery)).Methods("POST")

	router.Handle("/notifications", notifications_get.New(log, app.ServiceNotification)).Methods("GET")
	router.Handle("/notifications/read-all", notifications_read_all_post.New(log, app.ServiceNotification)).Methods("POST")
	router.Handle("/notifications/unread-count", notifications_count_get.New(log, app.ServiceNotification)).Methods("GET")
	router.Handle("/notifications/preferences", notification_preferences_get.New(log, app.ServiceNotification)).Methods("GET")
	router.Handle("/notifications/preferences", notification_preferences_put.New(log, app.ServiceNotification)).Methods("PUT")
	router.Handle("/notifications/{id}/read", notification_read_post.New(log, app.ServiceNotification)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
