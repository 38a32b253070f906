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

	addServiceHandler "github.com/bookingjasa/booking-service/internal/api/handlers/add_service"
	bookingStatsHandler "github.com/bookingjasa/booking-service/internal/api/handlers/booking_stats"
	createBookingHandler "github.com/bookingjasa/booking-service/internal/api/handlers/create_booking"
	exportBookingsHandler "github.com/bookingjasa/booking-service/internal/api/handlers/export_bookings"
	getAccountBookingsHandler "github.com/bookingjasa/booking-service/internal/api/handlers/get_account_bookings"
	getBookingHandler "github.com/bookingjasa/booking-service/internal/api/handlers/get_booking"
	listBookingsHandler "github.com/bookingjasa/booking-service/internal/api/handlers/list_bookings"
	listServicesHandler "github.com/bookingjasa/booking-service/internal/api/handlers/list_services"
	registerAccountHandler "github.com/bookingjasa/booking-service/internal/api/handlers/register_account"
	submitPaymentHandler "github.com/bookingjasa/booking-service/internal/api/handlers/submit_payment"
	updateStatusHandler "github.com/bookingjasa/booking-service/internal/api/handlers/update_status"
	verifyPaymentHandler "github.com/bookingjasa/booking-service/internal/api/handlers/verify_payment"
	"github.com/bookingjasa/booking-service/internal/api/middleware"
	"github.com/bookingjasa/booking-service/internal/config"
	"github.com/bookingjasa/booking-service/internal/infra/cache"
	accountRepo "github.com/bookingjasa/booking-service/internal/infra/storage/account"
	bookingRepo "github.com/bookingjasa/booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/bookingjasa/booking-service/internal/infra/storage/catalog"
	customerRepo "github.com/bookingjasa/booking-service/internal/infra/storage/customer"
	"github.com/bookingjasa/booking-service/internal/integrations/blobstore"
	accountsService "github.com/bookingjasa/booking-service/internal/service/accounts"
	bookingsService "github.com/bookingjasa/booking-service/internal/service/bookings"
	catalogService "github.com/bookingjasa/booking-service/internal/service/catalog"
	createBookingUC "github.com/bookingjasa/booking-service/internal/usecase/create_booking"
	submitPaymentUC "github.com/bookingjasa/booking-service/internal/usecase/submit_payment"
	"github.com/bookingjasa/booking-service/pkg/dbmetrics"
	"github.com/bookingjasa/booking-service/pkg/logger"
	"github.com/bookingjasa/booking-service/pkg/metrics"
	"github.com/bookingjasa/booking-service/pkg/simpletxmanager"
	"github.com/bookingjasa/booking-service/pkg/txmanager"
)

func main() {
	// A .env file is optional; it only seeds environment overrides.
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	blobClient := blobstore.NewClient(
		cfg.BlobStore.URL,
		time.Duration(cfg.BlobStore.Timeout)*time.Second,
		log,
	)
	log.Info("Blob store client initialized (url=%s timeout=%ds)", cfg.BlobStore.URL, cfg.BlobStore.Timeout)

	// Dashboard counters cache; the service works without it.
	var statsCache *cache.StatsCache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()

		statsCache = cache.NewStatsCache(redisClient, time.Duration(cfg.Redis.StatsTTLSecs)*time.Second)
		log.Info("Stats cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.StatsTTLSecs)
	}

	var (
		bookingRepository  *bookingRepo.Repository
		customerRepository *customerRepo.Repository
		catalogRepository  *catalogRepo.Repository
		accountRepository  *accountRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		accountRepository = accountRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		accountRepository = accountRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Nil interface when the cache is disabled; services check for nil.
	var bookingStatsCache bookingsService.StatsCache
	var createStatsCache createBookingUC.StatsInvalidator
	var paymentStatsCache submitPaymentUC.StatsInvalidator
	if statsCache != nil {
		bookingStatsCache = statsCache
		createStatsCache = statsCache
		paymentStatsCache = statsCache
	}

	bookingSvc := bookingsService.New(bookingRepository, bookingStatsCache, log)
	catalogSvc := catalogService.New(catalogRepository, log)
	accountSvc := accountsService.New(accountRepository, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		customerRepository,
		catalogRepository,
		txMgr,
		createStatsCache,
		log,
	)
	submitPaymentUseCase := submitPaymentUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		txMgr,
		paymentStatsCache,
		log,
	)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	submitPayment := submitPaymentHandler.NewHandler(submitPaymentUseCase, blobClient, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getAccountBookings := getAccountBookingsHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(bookingSvc, log)
	bookingStats := bookingStatsHandler.NewHandler(bookingSvc, log)
	updateStatus := updateStatusHandler.NewHandler(bookingSvc, log)
	verifyPayment := verifyPaymentHandler.NewHandler(bookingSvc, log)
	addService := addServiceHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	registerAccount := registerAccountHandler.NewHandler(accountSvc, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes (no identity required).
	api.HandleFunc("/accounts/register", registerAccount.Handle).Methods(http.MethodPost)
	api.HandleFunc("/services", listServices.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId:[0-9]+}", listServices.HandleGet).Methods(http.MethodGet)

	// Protected routes (require identity headers).
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/payment", submitPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/accounts/{accountId}/bookings", getAccountBookings.Handle).Methods(http.MethodGet)
	// Export is owner-scoped for regular accounts, full for admins.
	protected.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)

	// Admin routes.
	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/stats", bookingStats.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId:[0-9]+}/status", updateStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId:[0-9]+}/verify-payment", verifyPayment.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services", addService.Handle).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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

	log.Info("Server exited")
}
