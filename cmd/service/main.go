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
	application "amerex/internal/app"
	"amerex/internal/handlers/rest/address_delete"
	"amerex/internal/handlers/rest/address_post"
	"amerex/internal/handlers/rest/address_put"
	"amerex/internal/handlers/rest/addresses_get"
	"amerex/internal/handlers/rest/admin_dashboard_get"
	"amerex/internal/handlers/rest/admin_export_get"
	"amerex/internal/handlers/rest/admin_payment_approve_post"
	"amerex/internal/handlers/rest/admin_payment_reject_post"
	"amerex/internal/handlers/rest/admin_payments_get"
	"amerex/internal/handlers/rest/admin_quotes_get"
	"amerex/internal/handlers/rest/admin_shipment_approve_post"
	"amerex/internal/handlers/rest/admin_shipment_put"
	"amerex/internal/handlers/rest/admin_shipments_get"
	"amerex/internal/handlers/rest/admin_tickets_get"
	"amerex/internal/handlers/rest/admin_tracking_delete"
	"amerex/internal/handlers/rest/admin_tracking_post"
	"amerex/internal/handlers/rest/admin_users_get"
	"amerex/internal/handlers/rest/auth_login_post"
	"amerex/internal/handlers/rest/auth_register_post"
	"amerex/internal/handlers/rest/contact_post"
	"amerex/internal/handlers/rest/draft_back_post"
	"amerex/internal/handlers/rest/draft_coupon_delete"
	"amerex/internal/handlers/rest/draft_coupon_post"
	"amerex/internal/handlers/rest/draft_delete"
	"amerex/internal/handlers/rest/draft_get"
	"amerex/internal/handlers/rest/draft_insurance_post"
	"amerex/internal/handlers/rest/draft_international_post"
	"amerex/internal/handlers/rest/draft_post"
	"amerex/internal/handlers/rest/draft_step_post"
	"amerex/internal/handlers/rest/healthcheck_head"
	"amerex/internal/handlers/rest/notifications_get"
	"amerex/internal/handlers/rest/notifications_read_post"
	"amerex/internal/handlers/rest/payment_intent_post"
	"amerex/internal/handlers/rest/payment_submit_post"
	"amerex/internal/handlers/rest/payments_get"
	"amerex/internal/handlers/rest/ping_get"
	"amerex/internal/handlers/rest/profile_get"
	"amerex/internal/handlers/rest/profile_put"
	"amerex/internal/handlers/rest/quote_calculate_post"
	"amerex/internal/handlers/rest/quote_post"
	"amerex/internal/handlers/rest/shipment_get"
	"amerex/internal/handlers/rest/shipments_get"
	"amerex/internal/handlers/rest/ticket_close_post"
	"amerex/internal/handlers/rest/ticket_get"
	"amerex/internal/handlers/rest/ticket_post"
	"amerex/internal/handlers/rest/ticket_reply_post"
	"amerex/internal/handlers/rest/tickets_get"
	"amerex/internal/handlers/rest/track_get"
	"amerex/internal/pkg/config"
	"amerex/internal/pkg/dotenv"
	metrics_system "amerex/internal/pkg/metrics"
	"amerex/internal/pkg/middlewares/auth"
	"amerex/internal/pkg/middlewares/graceful_shutdown"
	"amerex/internal/pkg/middlewares/metrics"
	"amerex/internal/pkg/middlewares/rate_limiter"
	"amerex/internal/pkg/middlewares/timeout"
	"amerex/internal/pkg/postgres"
	"amerex/pkg/logger"
	"amerex/pkg/logger/zap_adapter"
	"amerex/pkg/token_bucket"
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

	mainLog.Info("starting amerex application")

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

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
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
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// публичные маршруты, токен не нужен
	router.Handle("/quote/calculate", quote_calculate_post.New(log, app.ServiceQuote)).Methods("POST")
	router.Handle("/quote", quote_post.New(log, app.ServiceQuote)).Methods("POST")
	router.Handle("/contact", contact_post.New(log, app.ServiceContact)).Methods("POST")
	router.Handle("/track/{code}", track_get.New(log, app.ServiceShipment)).Methods("GET")

	router.Handle("/auth/register", auth_register_post.New(log, app.ServiceAuth)).Methods("POST")
	router.Handle("/auth/login", auth_login_post.New(log, app.ServiceAuth)).Methods("POST")

	// личный кабинет, требуется Bearer-токен
	authorized := router.PathPrefix("").Subrouter()
	authorized.Use(auth.Middleware(log, app.ServiceAuth))

	authorized.Handle("/profile", profile_get.New(log, app.ServiceAccount)).Methods("GET")
	authorized.Handle("/profile", profile_put.New(log, app.ServiceAccount)).Methods("PUT")
	authorized.Handle("/addresses", addresses_get.New(log, app.ServiceAccount)).Methods("GET")
	authorized.Handle("/addresses", address_post.New(log, app.ServiceAccount)).Methods("POST")
	authorized.Handle("/addresses/{id}", address_put.New(log, app.ServiceAccount)).Methods("PUT")
	authorized.Handle("/addresses/{id}", address_delete.New(log, app.ServiceAccount)).Methods("DELETE")

	authorized.Handle("/shipments", shipments_get.New(log, app.ServiceShipment)).Methods("GET")
	authorized.Handle("/shipments/{id}", shipment_get.New(log, app.ServiceShipment)).Methods("GET")
	authorized.Handle("/payments", payments_get.New(log, app.ServicePayment)).Methods("GET")

	authorized.Handle("/notifications", notifications_get.New(log, app.ServiceNotification)).Methods("GET")
	authorized.Handle("/notifications/read", notifications_read_post.New(log, app.ServiceNotification)).Methods("POST")

	authorized.Handle("/tickets", tickets_get.New(log, app.ServiceTicket)).Methods("GET")
	authorized.Handle("/tickets", ticket_post.New(log, app.ServiceTicket)).Methods("POST")
	authorized.Handle("/tickets/{id}", ticket_get.New(log, app.ServiceTicket, false)).Methods("GET")
	authorized.Handle("/tickets/{id}/reply", ticket_reply_post.New(log, app.ServiceTicket, false)).Methods("POST")
	authorized.Handle("/tickets/{id}/close", ticket_close_post.New(log, app.ServiceTicket, false)).Methods("POST")

	// мастер оформления отправления
	authorized.Handle("/drafts", draft_post.New(log, app.ServiceWizard)).Methods("POST")
	authorized.Handle("/drafts/{id}", draft_get.New(log, app.ServiceWizard)).Methods("GET")
	authorized.Handle("/drafts/{id}", draft_delete.New(log, app.ServiceWizard)).Methods("DELETE")
	authorized.Handle("/drafts/{id}/step", draft_step_post.New(log, app.ServiceWizard)).Methods("POST")
	authorized.Handle("/drafts/{id}/back", draft_back_post.New(log, app.ServiceWizard)).Methods("POST")
	authorized.Handle("/drafts/{id}/coupon", draft_coupon_post.New(log, app.ServiceWizard)).Methods("POST")
	authorized.Handle("/drafts/{id}/coupon", draft_coupon_delete.New(log, app.ServiceWizard)).Methods("DELETE")
	authorized.Handle("/drafts/{id}/insurance", draft_insurance_post.New(log, app.ServiceWizard)).Methods("POST")
	authorized.Handle("/drafts/{id}/international", draft_international_post.New(log, app.ServiceWizard)).Methods("POST")

	authorized.Handle("/payments/intent", payment_intent_post.New(log, app.ServicePayment)).Methods("POST")
	authorized.Handle("/payments/submit", payment_submit_post.New(log, app.ServicePayment)).Methods("POST")

	// админка, поверх авторизации проверяется роль
	admin := authorized.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminMiddleware(log, app.ServiceAuth))

	admin.Handle("/dashboard", admin_dashboard_get.New(log, app.ServiceAdmin)).Methods("GET")
	admin.Handle("/shipments", admin_shipments_get.New(log, app.ServiceAdmin)).Methods("GET")
	admin.Handle("/shipments/{id}", admin_shipment_put.New(log, app.ServiceAdmin)).Methods("PUT")
	admin.Handle("/shipments/{id}/approve", admin_shipment_approve_post.New(log, app.ServiceAdmin)).Methods("POST")
	admin.Handle("/shipments/{id}/tracking", admin_tracking_post.New(log, app.ServiceAdmin)).Methods("POST")
	admin.Handle("/tracking/{id}", admin_tracking_delete.New(log, app.ServiceAdmin)).Methods("DELETE")

	admin.Handle("/payments", admin_payments_get.New(log, app.ServiceAdmin)).Methods("GET")
	admin.Handle("/payments/{id}/approve", admin_payment_approve_post.New(log, app.ServiceAdmin)).Methods("POST")
	admin.Handle("/payments/{id}/reject", admin_payment_reject_post.New(log, app.ServiceAdmin)).Methods("POST")

	admin.Handle("/users", admin_users_get.New(log, app.ServiceAdmin)).Methods("GET")
	admin.Handle("/tickets", admin_tickets_get.New(log, app.ServiceAdmin)).Methods("GET")
	admin.Handle("/tickets/{id}", ticket_get.New(log, app.ServiceTicket, true)).Methods("GET")
	admin.Handle("/tickets/{id}/reply", ticket_reply_post.New(log, app.ServiceTicket, true)).Methods("POST")
	admin.Handle("/tickets/{id}/close", ticket_close_post.New(log, app.ServiceTicket, true)).Methods("POST")

	admin.Handle("/quotes", admin_quotes_get.New(log, app.ServiceQuote)).Methods("GET")
	admin.Handle("/export/{entity}", admin_export_get.New(log, app.ServiceAdmin)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
