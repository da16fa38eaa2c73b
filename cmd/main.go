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

	decideBookingHandler "github.com/parkshare/PSM-BookingService/internal/api/handlers/decide_booking"
	getBookingHandler "github.com/parkshare/PSM-BookingService/internal/api/handlers/get_booking"
	getOwnerBookingsHandler "github.com/parkshare/PSM-BookingService/internal/api/handlers/get_owner_bookings"
	getSeekerBookingsHandler "github.com/parkshare/PSM-BookingService/internal/api/handlers/get_seeker_bookings"
	getSpaceAvailabilityHandler "github.com/parkshare/PSM-BookingService/internal/api/handlers/get_space_availability"
	listSpacesHandler "github.com/parkshare/PSM-BookingService/internal/api/handlers/list_spaces"
	submitBookingHandler "github.com/parkshare/PSM-BookingService/internal/api/handlers/submit_booking"
	updateSpaceAvailabilityHandler "github.com/parkshare/PSM-BookingService/internal/api/handlers/update_space_availability"
	"github.com/parkshare/PSM-BookingService/internal/api/middleware"
	"github.com/parkshare/PSM-BookingService/internal/config"
	bookingRepo "github.com/parkshare/PSM-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/parkshare/PSM-BookingService/internal/infra/storage/slot"
	spaceRepo "github.com/parkshare/PSM-BookingService/internal/infra/storage/space"
	bookingsService "github.com/parkshare/PSM-BookingService/internal/service/bookings"
	spacesService "github.com/parkshare/PSM-BookingService/internal/service/spaces"
	decideBookingUC "github.com/parkshare/PSM-BookingService/internal/usecase/decide_booking"
	submitBookingUC "github.com/parkshare/PSM-BookingService/internal/usecase/submit_booking"
	"github.com/parkshare/PSM-BookingService/pkg/dbmetrics"
	"github.com/parkshare/PSM-BookingService/pkg/logger"
	"github.com/parkshare/PSM-BookingService/pkg/metrics"
	"github.com/parkshare/PSM-BookingService/pkg/simpletxmanager"
	"github.com/parkshare/PSM-BookingService/pkg/txmanager"
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

	log.Info("Starting PSM-BookingService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		spaceRepository   *spaceRepo.Repository
		bookingRepository *bookingRepo.Repository
		slotRepository    *slotRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		spaceRepository = spaceRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		spaceRepository = spaceRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		log,
	)
	spaceSvc := spacesService.NewService(
		spaceRepository,
		slotRepository,
		log,
	)

	// Инициализируем use cases
	submitBookingUseCase := submitBookingUC.NewUseCase(
		spaceRepository,
		bookingRepository,
		txMgr,
		log,
	)

	decideBookingUseCase := decideBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	decideBooking := decideBookingHandler.NewHandler(decideBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getSeekerBookings := getSeekerBookingsHandler.NewHandler(bookingSvc, log)
	getOwnerBookings := getOwnerBookingsHandler.NewHandler(bookingSvc, log)
	listSpaces := listSpacesHandler.NewHandler(spaceSvc, log)
	getSpaceAvailability := getSpaceAvailabilityHandler.NewHandler(spaceSvc, log)
	updateSpaceAvailability := updateSpaceAvailabilityHandler.NewHandler(spaceSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог площадок, открытых для бронирования
	api.HandleFunc("/spaces", listSpaces.Handle).Methods(http.MethodGet)

	// Окно доступности и тарифы площадки
	api.HandleFunc("/spaces/{spaceId}/availability",
		getSpaceAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Подача запроса на бронирование
	protected.HandleFunc("/bookings", submitBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Решение владельца по запросу (approve / reject)
	protected.HandleFunc("/bookings/{bookingId}/decision", decideBooking.Handle).Methods(http.MethodPatch)

	// История бронирований арендатора
	protected.HandleFunc("/seekers/{seekerId}/bookings", getSeekerBookings.Handle).Methods(http.MethodGet)

	// --- Дашборд владельца ---
	// Бронирования по площадкам владельца
	protected.HandleFunc("/owners/{ownerId}/bookings", getOwnerBookings.Handle).Methods(http.MethodGet)

	// Обновление окна доступности площадки
	protected.HandleFunc("/spaces/{spaceId}/availability",
		updateSpaceAvailability.Handle).Methods(http.MethodPut)

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
