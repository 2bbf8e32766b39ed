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
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	adminLoginHandler "github.com/m04kA/tours-service/internal/api/handlers/admin_login"
	createBookingHandler "github.com/m04kA/tours-service/internal/api/handlers/create_booking"
	createCatalogItemHandler "github.com/m04kA/tours-service/internal/api/handlers/create_catalog_item"
	deleteCatalogItemHandler "github.com/m04kA/tours-service/internal/api/handlers/delete_catalog_item"
	downloadVoucherHandler "github.com/m04kA/tours-service/internal/api/handlers/download_voucher"
	getBookingHandler "github.com/m04kA/tours-service/internal/api/handlers/get_booking"
	getCatalogItemHandler "github.com/m04kA/tours-service/internal/api/handlers/get_catalog_item"
	getDashboardHandler "github.com/m04kA/tours-service/internal/api/handlers/get_dashboard"
	getSettingsHandler "github.com/m04kA/tours-service/internal/api/handlers/get_settings"
	listBookingsHandler "github.com/m04kA/tours-service/internal/api/handlers/list_bookings"
	listCatalogHandler "github.com/m04kA/tours-service/internal/api/handlers/list_catalog"
	planTripHandler "github.com/m04kA/tours-service/internal/api/handlers/plan_trip"
	toggleCatalogItemHandler "github.com/m04kA/tours-service/internal/api/handlers/toggle_catalog_item"
	trackBookingHandler "github.com/m04kA/tours-service/internal/api/handlers/track_booking"
	updateBookingStatusHandler "github.com/m04kA/tours-service/internal/api/handlers/update_booking_status"
	updateCatalogItemHandler "github.com/m04kA/tours-service/internal/api/handlers/update_catalog_item"
	updateSettingsHandler "github.com/m04kA/tours-service/internal/api/handlers/update_settings"
	"github.com/m04kA/tours-service/internal/api/middleware"
	"github.com/m04kA/tours-service/internal/config"
	adminRepo "github.com/m04kA/tours-service/internal/infra/storage/admin"
	bookingRepo "github.com/m04kA/tours-service/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/tours-service/internal/infra/storage/catalog"
	settingsRepo "github.com/m04kA/tours-service/internal/infra/storage/settings"
	"github.com/m04kA/tours-service/internal/integrations/functions"
	authService "github.com/m04kA/tours-service/internal/service/auth"
	bookingsService "github.com/m04kA/tours-service/internal/service/bookings"
	catalogService "github.com/m04kA/tours-service/internal/service/catalog"
	dashboardService "github.com/m04kA/tours-service/internal/service/dashboard"
	settingsService "github.com/m04kA/tours-service/internal/service/settings"
	createBookingUC "github.com/m04kA/tours-service/internal/usecase/create_booking"
	planTripUC "github.com/m04kA/tours-service/internal/usecase/plan_trip"
	"github.com/m04kA/tours-service/internal/voucher"
	"github.com/m04kA/tours-service/pkg/dbmetrics"
	"github.com/m04kA/tours-service/pkg/logger"
	"github.com/m04kA/tours-service/pkg/metrics"
	"github.com/m04kA/tours-service/pkg/trackingcode"
	"github.com/m04kA/tours-service/pkg/txmanager"
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

	log.Info("Starting tours-service...")

	// Метрики (если включены); при nil обёртка БД просто проксирует вызовы
	var metricsCollector *metrics.Metrics
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	settingsRepository := settingsRepo.NewRepository(wrappedDB)
	adminRepository := adminRepo.NewRepository(wrappedDB)

	// Интеграции
	functionsClient := functions.NewClient(
		cfg.Functions.URL,
		cfg.Functions.APIKey,
		time.Duration(cfg.Functions.Timeout)*time.Second,
		log,
	)
	log.Info("Functions client initialized (url=%s, timeout=%ds)", cfg.Functions.URL, cfg.Functions.Timeout)

	codeGenerator := trackingcode.New(cfg.Booking.TrackingCodePrefix, cfg.Booking.TrackingCodeLength)
	voucherRenderer := voucher.NewRenderer(cfg.Booking.VoucherIssuer)

	// Сервисы
	authSvc := authService.NewService(
		adminRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
		log,
	)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		voucherRenderer,
		txMgr,
		cfg.Booking.StrictTransitions,
		log,
	)
	settingsSvc := settingsService.NewService(settingsRepository, log)
	dashboardSvc := dashboardService.NewService(catalogRepository, bookingRepository, txMgr, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		codeGenerator,
		functionsClient,
		cfg.Booking.NotifyOnCreate,
		log,
	)
	planTripUseCase := planTripUC.NewUseCase(functionsClient, cfg.Messaging.WhatsAppNumber, log)

	// Первый администратор создаётся из конфигурации, если его ещё нет
	if cfg.Auth.BootstrapEmail != "" {
		bootstrapCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := authSvc.EnsureBootstrapAdmin(bootstrapCtx, cfg.Auth.BootstrapEmail, cfg.Auth.BootstrapPassword, cfg.Auth.BootstrapName)
		cancel()
		if err != nil {
			log.Fatal("Failed to bootstrap admin user: %v", err)
		}
	}

	// Лимитер для публичных форм и трекинга
	var limiter middleware.Limiter
	if cfg.RateLimit.Enabled {
		window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
		if cfg.Redis.Enabled {
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			defer rdb.Close()
			limiter = middleware.NewRedisLimiter(rdb, cfg.RateLimit.Limit, window, "tours:ratelimit")
			log.Info("Rate limiting backed by redis at %s", cfg.Redis.Addr)
		} else {
			limiter = middleware.NewMemoryLimiter(cfg.RateLimit.Limit, window)
			log.Info("Rate limiting uses in-memory windows")
		}
	}
	rateLimited := func(scope string) mux.MiddlewareFunc {
		if limiter == nil {
			return func(next http.Handler) http.Handler { return next }
		}
		return mux.MiddlewareFunc(middleware.RateLimit(limiter, scope, cfg.RateLimit.FailOpen, cfg.RateLimit.TrustForwardedFor, log))
	}

	// Handlers
	listCatalog := listCatalogHandler.NewHandler(catalogSvc, log)
	getCatalogItem := getCatalogItemHandler.NewHandler(catalogSvc, log)
	createCatalogItem := createCatalogItemHandler.NewHandler(catalogSvc, log)
	updateCatalogItem := updateCatalogItemHandler.NewHandler(catalogSvc, log)
	toggleCatalogItem := toggleCatalogItemHandler.NewHandler(catalogSvc, log)
	deleteCatalogItem := deleteCatalogItemHandler.NewHandler(catalogSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	trackBooking := trackBookingHandler.NewHandler(bookingSvc, log)
	downloadVoucher := downloadVoucherHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	planTrip := planTripHandler.NewHandler(planTripUseCase, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	getDashboard := getDashboardHandler.NewHandler(dashboardSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// ADMIN ROUTES (Bearer JWT)
	// ============================================================
	// Регистрируются первыми: иначе /admin/... совпадёт с /{kind}/{slug}

	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin(authSvc, log))

	admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId:[0-9]+}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Настройки сайта ---
	admin.HandleFunc("/settings/{group}", updateSettings.Handle).Methods(http.MethodPut)

	// --- Каталог ---
	admin.HandleFunc("/{kind}", listCatalog.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/{kind}", createCatalogItem.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/{kind}/{id:[0-9]+}", updateCatalogItem.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/{kind}/{id:[0-9]+}/publish", toggleCatalogItem.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/{kind}/{id:[0-9]+}", deleteCatalogItem.Handle).Methods(http.MethodDelete)

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.OptionalViewer(authSvc))

	public.HandleFunc("/settings", getSettings.HandleAll).Methods(http.MethodGet)
	public.HandleFunc("/settings/{group}", getSettings.Handle).Methods(http.MethodGet)

	// --- Бронирования и трекинг ---
	bookingRoutes := public.PathPrefix("/bookings").Subrouter()
	bookingRoutes.Use(rateLimited("bookings"))
	bookingRoutes.HandleFunc("", createBooking.Handle).Methods(http.MethodPost)
	bookingRoutes.HandleFunc("/track/{code}", trackBooking.Handle).Methods(http.MethodGet)
	bookingRoutes.HandleFunc("/track/{code}/voucher", downloadVoucher.Handle).Methods(http.MethodGet)

	// --- Планирование поездки ---
	tripRoutes := public.PathPrefix("/trip-requests").Subrouter()
	tripRoutes.Use(rateLimited("trip-requests"))
	tripRoutes.HandleFunc("/whatsapp", planTrip.HandleWhatsApp).Methods(http.MethodPost)
	tripRoutes.HandleFunc("/email", planTrip.HandleEmail).Methods(http.MethodPost)

	// --- Каталог ---
	public.HandleFunc("/{kind}", listCatalog.Handle).Methods(http.MethodGet)
	public.HandleFunc("/{kind}/{slug}", getCatalogItem.Handle).Methods(http.MethodGet)

	// CORS для фронтенда сайта и админки
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "Content-Disposition"},
		AllowCredentials: true,
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
