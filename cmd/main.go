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
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createEventHandler "github.com/avilov/MDC-AppointmentService/internal/api/handlers/create_event"
	getAvailableSlotsHandler "github.com/avilov/MDC-AppointmentService/internal/api/handlers/get_available_slots"
	healthHandler "github.com/avilov/MDC-AppointmentService/internal/api/handlers/health"
	listEventsHandler "github.com/avilov/MDC-AppointmentService/internal/api/handlers/list_events"
	"github.com/avilov/MDC-AppointmentService/internal/api/middleware"
	"github.com/avilov/MDC-AppointmentService/internal/config"
	eventRepo "github.com/avilov/MDC-AppointmentService/internal/infra/storage/event"
	eventsService "github.com/avilov/MDC-AppointmentService/internal/service/events"
	createEventUC "github.com/avilov/MDC-AppointmentService/internal/usecase/create_event"
	getAvailableSlotsUC "github.com/avilov/MDC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/avilov/MDC-AppointmentService/pkg/dbmetrics"
	"github.com/avilov/MDC-AppointmentService/pkg/logger"
	"github.com/avilov/MDC-AppointmentService/pkg/metrics"
	"github.com/avilov/MDC-AppointmentService/pkg/simpletxmanager"
	"github.com/avilov/MDC-AppointmentService/pkg/txmanager"
)

func main() {
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

	log.Info("Starting MDC-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	schedule := cfg.Schedule.ToDomain()
	log.Info("Schedule: %02d:00-%02d:00 %s, slot=%dm, legacy_overlap=%t",
		schedule.StartHour, schedule.EndHour, schedule.Timezone,
		schedule.SlotDurationMinutes, schedule.LegacyOverlap)

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

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var eventRepository *eventRepo.Repository

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		eventRepository = eventRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		eventRepository = eventRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	eventsSvc := eventsService.NewService(eventRepository, log)

	// Инициализируем use cases
	createEventUseCase := createEventUC.NewUseCase(
		eventRepository,
		schedule,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		eventRepository,
		schedule,
		log,
	)

	// Инициализируем handlers
	createEvent := createEventHandler.NewHandler(createEventUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listEvents := listEventsHandler.NewHandler(eventsSvc, log)
	health := healthHandler.NewHandler()

	// Настраиваем роутер
	r := mux.NewRouter()

	// Присваиваем каждому запросу идентификатор
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Liveness
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// Свободные слоты на дату в таймзоне клиента
	r.HandleFunc("/", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание события (бронирования)
	r.HandleFunc("/create-event", createEvent.Handle).Methods(http.MethodPost)

	// События за период
	r.HandleFunc("/all-events", listEvents.Handle).Methods(http.MethodPost)

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
