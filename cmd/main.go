package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/court-booking/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/court-booking/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/court-booking/internal/api/handlers/create_booking"
	createCourtHandler "github.com/m04kA/court-booking/internal/api/handlers/create_court"
	createScheduleHandler "github.com/m04kA/court-booking/internal/api/handlers/create_schedule"
	deleteCourtHandler "github.com/m04kA/court-booking/internal/api/handlers/delete_court"
	deleteScheduleHandler "github.com/m04kA/court-booking/internal/api/handlers/delete_schedule"
	generateSchedulesHandler "github.com/m04kA/court-booking/internal/api/handlers/generate_schedules"
	getBookingHandler "github.com/m04kA/court-booking/internal/api/handlers/get_booking"
	getCourtHandler "github.com/m04kA/court-booking/internal/api/handlers/get_court"
	getScheduleHandler "github.com/m04kA/court-booking/internal/api/handlers/get_schedule"
	healthHandler "github.com/m04kA/court-booking/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/court-booking/internal/api/handlers/list_bookings"
	listCourtsHandler "github.com/m04kA/court-booking/internal/api/handlers/list_courts"
	listSchedulesHandler "github.com/m04kA/court-booking/internal/api/handlers/list_schedules"
	updateBookingHandler "github.com/m04kA/court-booking/internal/api/handlers/update_booking"
	updateCourtHandler "github.com/m04kA/court-booking/internal/api/handlers/update_court"
	updateScheduleHandler "github.com/m04kA/court-booking/internal/api/handlers/update_schedule"
	"github.com/m04kA/court-booking/internal/api/middleware"
	"github.com/m04kA/court-booking/internal/config"
	bookingRepo "github.com/m04kA/court-booking/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/court-booking/internal/infra/storage/court"
	"github.com/m04kA/court-booking/internal/infra/storage/database"
	scheduleRepo "github.com/m04kA/court-booking/internal/infra/storage/schedule"
	bookingsService "github.com/m04kA/court-booking/internal/service/bookings"
	courtsService "github.com/m04kA/court-booking/internal/service/courts"
	schedulesService "github.com/m04kA/court-booking/internal/service/schedules"
	cancelBookingUC "github.com/m04kA/court-booking/internal/usecase/cancel_booking"
	checkAvailabilityUC "github.com/m04kA/court-booking/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/court-booking/internal/usecase/create_booking"
	"github.com/m04kA/court-booking/pkg/dbmetrics"
	"github.com/m04kA/court-booking/pkg/logger"
	"github.com/m04kA/court-booking/pkg/metrics"
	"github.com/m04kA/court-booking/pkg/mq"
	"github.com/m04kA/court-booking/pkg/txmanager"
	"github.com/m04kA/court-booking/pkg/validation"
)

// eventPublisher RabbitMQ или заглушка, если события выключены
type eventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
	Close() error
}

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

	log.Info("Starting court-booking...")

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load booking timezone: %v", err)
	}
	log.Info("Booking timezone: %s", location)

	// Инициализируем метрики (если включены). nil-коллектор безопасен для всех потребителей.
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	db, dialect, err := database.Open(startupCtx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Info("Successfully connected to database (driver=%s)", dialect)

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(startupCtx, db, dialect, log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}
	cancelStartup()

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	// Публикация событий бронирований
	var publisher eventPublisher = mq.NopPublisher{}
	if cfg.Events.Enabled {
		rabbit, err := mq.NewPublisher(cfg.Events.URL, cfg.Events.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		publisher = rabbit
		log.Info("Booking events are published to exchange %s", cfg.Events.Exchange)
	}
	defer publisher.Close()

	// Инициализируем репозитории
	courtRepository := courtRepo.NewRepository(wrappedDB, dialect)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB, dialect)
	bookingRepository := bookingRepo.NewRepository(wrappedDB, dialect)
	txMgr := txmanager.NewTransactionManager(wrappedDB)
	validator := validation.New()

	// Инициализируем сервисы
	courtSvc := courtsService.NewService(courtRepository, validator, log)
	scheduleSvc := schedulesService.NewService(
		scheduleRepository,
		courtRepository,
		bookingRepository,
		txMgr,
		validator,
		location,
		log,
	)
	bookingSvc := bookingsService.NewService(bookingRepository, validator, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		scheduleRepository,
		bookingRepository,
		txMgr,
		validator,
		publisher,
		metricsCollector,
		location,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		txMgr,
		publisher,
		metricsCollector,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		scheduleRepository,
		courtRepository,
		validator,
		location,
		log,
	)

	// Инициализируем handlers
	listCourts := listCourtsHandler.NewHandler(courtSvc, log)
	getCourt := getCourtHandler.NewHandler(courtSvc, log)
	createCourt := createCourtHandler.NewHandler(courtSvc, log)
	updateCourt := updateCourtHandler.NewHandler(courtSvc, log)
	deleteCourt := deleteCourtHandler.NewHandler(courtSvc, log)

	listSchedules := listSchedulesHandler.NewHandler(scheduleSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	createSchedule := createScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	deleteSchedule := deleteScheduleHandler.NewHandler(scheduleSvc, log)
	generateSchedules := generateSchedulesHandler.NewHandler(scheduleSvc, log)

	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)

	health := healthHandler.NewHandler(wrappedDB, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(log))
	r.Use(middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/v1").Subrouter()

	// --- Корты ---
	api.HandleFunc("/courts", listCourts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courts", createCourt.Handle).Methods(http.MethodPost)
	api.HandleFunc("/courts/{id}", getCourt.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courts/{id}", updateCourt.Handle).Methods(http.MethodPut)
	api.HandleFunc("/courts/{id}", deleteCourt.Handle).Methods(http.MethodDelete)

	// --- Слоты ---
	api.HandleFunc("/schedules", listSchedules.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedules-available", listSchedules.HandleAvailable).Methods(http.MethodGet)
	api.HandleFunc("/schedules", createSchedule.Handle).Methods(http.MethodPost)
	// /schedules/generate регистрируется раньше /schedules/{id}
	api.HandleFunc("/schedules/generate", generateSchedules.Handle).Methods(http.MethodPost)
	api.HandleFunc("/schedules/{id}", getSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedules/{id}", updateSchedule.Handle).Methods(http.MethodPut)
	api.HandleFunc("/schedules/{id}", deleteSchedule.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/recent", listBookings.HandleRecent).Methods(http.MethodGet)
	api.HandleFunc("/bookings/check-availability", checkAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{id}", cancelBooking.Handle).Methods(http.MethodDelete)

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
	close(stopMetricsCh)

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
