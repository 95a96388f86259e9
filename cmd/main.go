package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createCheckoutSessionHandler "github.com/m04kA/SMC-QueueSkipService/internal/api/handlers/create_checkout_session"
	createVenueConfigHandler "github.com/m04kA/SMC-QueueSkipService/internal/api/handlers/create_venue_config"
	createVenueConfigsHandler "github.com/m04kA/SMC-QueueSkipService/internal/api/handlers/create_venue_configs"
	deleteVenueConfigHandler "github.com/m04kA/SMC-QueueSkipService/internal/api/handlers/delete_venue_config"
	getAllVenuesHandler "github.com/m04kA/SMC-QueueSkipService/internal/api/handlers/get_all_venues"
	getVenueHandler "github.com/m04kA/SMC-QueueSkipService/internal/api/handlers/get_venue"
	getVenueConfigHandler "github.com/m04kA/SMC-QueueSkipService/internal/api/handlers/get_venue_config"
	paymentWebhookHandler "github.com/m04kA/SMC-QueueSkipService/internal/api/handlers/payment_webhook"
	toggleConfigActiveHandler "github.com/m04kA/SMC-QueueSkipService/internal/api/handlers/toggle_config_active"
	"github.com/m04kA/SMC-QueueSkipService/internal/api/middleware"
	"github.com/m04kA/SMC-QueueSkipService/internal/config"
	qsconfigRepo "github.com/m04kA/SMC-QueueSkipService/internal/infra/storage/qsconfig"
	tradelogRepo "github.com/m04kA/SMC-QueueSkipService/internal/infra/storage/tradelog"
	venueRepo "github.com/m04kA/SMC-QueueSkipService/internal/infra/storage/venue"
	checkoutClient "github.com/m04kA/SMC-QueueSkipService/internal/integrations/checkout"
	"github.com/m04kA/SMC-QueueSkipService/internal/integrations/mailer"
	qsconfigService "github.com/m04kA/SMC-QueueSkipService/internal/service/qsconfig"
	venuesService "github.com/m04kA/SMC-QueueSkipService/internal/service/venues"
	createCheckoutSessionUC "github.com/m04kA/SMC-QueueSkipService/internal/usecase/create_checkout_session"
	processPaymentEventUC "github.com/m04kA/SMC-QueueSkipService/internal/usecase/process_payment_event"
	"github.com/m04kA/SMC-QueueSkipService/pkg/dbmetrics"
	"github.com/m04kA/SMC-QueueSkipService/pkg/logger"
	"github.com/m04kA/SMC-QueueSkipService/pkg/metrics"
	"github.com/m04kA/SMC-QueueSkipService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-QueueSkipService/pkg/txmanager"
)

func main() {
	// Подхватываем .env с секретами, если он есть
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-QueueSkipService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграции
	checkout := checkoutClient.NewClient(
		cfg.Checkout.APIBaseURL,
		cfg.Checkout.SecretKey,
		time.Duration(cfg.Checkout.Timeout)*time.Second,
		log,
	)
	mail := mailer.NewMailer(mailer.Config{
		Host:     cfg.Email.SMTPHost,
		Port:     cfg.Email.SMTPPort,
		Username: cfg.Email.Username,
		Password: cfg.Email.Password,
		Sender:   cfg.Email.Sender,
	}, log)
	log.Info("Integrations initialized (checkout=%s timeout=%ds, smtp=%s:%d)",
		cfg.Checkout.APIBaseURL, cfg.Checkout.Timeout, cfg.Email.SMTPHost, cfg.Email.SMTPPort)

	// Инициализируем репозитории (с метриками или без)
	var (
		venueRepository    *venueRepo.Repository
		qsconfigRepository *qsconfigRepo.Repository
		tradelogRepository *tradelogRepo.Repository
	)

	// Интерфейс transaction manager-а, общий для обеих реализаций
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		venueRepository = venueRepo.NewRepository(wrappedDB)
		qsconfigRepository = qsconfigRepo.NewRepository(wrappedDB)
		tradelogRepository = tradelogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		venueRepository = venueRepo.NewRepository(db)
		qsconfigRepository = qsconfigRepo.NewRepository(db)
		tradelogRepository = tradelogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	qsconfigSvc := qsconfigService.NewService(qsconfigRepository, txMgr, log)
	venuesSvc := venuesService.NewService(venueRepository, qsconfigRepository, log)

	// Инициализируем use cases
	createSessionUseCase := createCheckoutSessionUC.NewUseCase(
		venueRepository,
		checkout,
		cfg.Checkout.PublicBaseURL,
		cfg.Checkout.Currency,
		log,
	)
	processEventUseCase, err := processPaymentEventUC.NewUseCase(tradelogRepository, mail, log)
	if err != nil {
		log.Fatal("Failed to initialize payment event use case: %v", err)
	}

	// Инициализируем handlers
	getAllVenues := getAllVenuesHandler.NewHandler(venuesSvc, log)
	getVenue := getVenueHandler.NewHandler(venuesSvc, log)
	getVenueConfig := getVenueConfigHandler.NewHandler(qsconfigSvc, log)
	createVenueConfig := createVenueConfigHandler.NewHandler(qsconfigSvc, log)
	createVenueConfigs := createVenueConfigsHandler.NewHandler(qsconfigSvc, log)
	deleteVenueConfig := deleteVenueConfigHandler.NewHandler(qsconfigSvc, log)
	toggleConfigActive := toggleConfigActiveHandler.NewHandler(qsconfigSvc, log)
	createCheckoutSession := createCheckoutSessionHandler.NewHandler(createSessionUseCase, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(processEventUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Витрина заведений ---
	api.HandleFunc("/venues", getAllVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}", getVenue.Handle).Methods(http.MethodGet)

	// --- Конфигурация queue-skip ---
	api.HandleFunc("/venues/{venueId}/queue-skip-config", getVenueConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}/queue-skip-config", createVenueConfig.Handle).Methods(http.MethodPut)
	api.HandleFunc("/venues/{venueId}/queue-skip-configs", createVenueConfigs.Handle).Methods(http.MethodPut)
	api.HandleFunc("/queue-skip-configs/{configDayId}", deleteVenueConfig.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/queue-skip-configs/{configDayId}/active", toggleConfigActive.Handle).Methods(http.MethodPatch)

	// --- Оплата ---
	api.HandleFunc("/checkout/sessions", createCheckoutSession.Handle).Methods(http.MethodPost)

	// Webhook платежного провайдера (защищен shared-secret токеном, если задан)
	webhooks := api.PathPrefix("/webhooks").Subrouter()
	webhooks.Use(middleware.WebhookAuth(cfg.Webhook.Token, log))
	webhooks.HandleFunc("/payments", paymentWebhook.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
