package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	adminAuthHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/admin_auth"
	couponsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/coupons"
	createPaymentIntentHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_payment_intent"
	createReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_reservation"
	dashboardHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/dashboard"
	getDailySlotsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_daily_slots"
	menuItemsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/menu_items"
	quoteReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/quote_reservation"
	reservationsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/reservations"
	slotsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/slots"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	adminRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/admin"
	couponRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/coupon"
	customerRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/customer"
	menuRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/menu"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	slotRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/slot"
	soldOutRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/soldout"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/mailer"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/stripe"
	authService "github.com/m04kA/SMC-ReservationService/internal/service/auth"
	couponsService "github.com/m04kA/SMC-ReservationService/internal/service/coupons"
	dashboardService "github.com/m04kA/SMC-ReservationService/internal/service/dashboard"
	menuService "github.com/m04kA/SMC-ReservationService/internal/service/menu"
	reservationsService "github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	slotsService "github.com/m04kA/SMC-ReservationService/internal/service/slots"
	createPaymentIntentUC "github.com/m04kA/SMC-ReservationService/internal/usecase/create_payment_intent"
	createReservationUC "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	getDailySlotsUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_daily_slots"
	quoteReservationUC "github.com/m04kA/SMC-ReservationService/internal/usecase/quote_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

const mailTimeout = 30 * time.Second

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	createAdmin := flag.String("create-admin", "", "create an admin account (email:password) and exit")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-ReservationService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Суммы в JSON отдаем числами
	decimal.MarshalJSONWithoutQuotes = true

	location, err := time.LoadLocation(cfg.Business.Timezone)
	if err != nil {
		log.Fatal("Invalid business timezone %q: %v", cfg.Business.Timezone, err)
	}

	// Инициализируем метрики (если включены)
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

	// Без метрик обёртка работает как прозрачный прокси
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	menuRepository := menuRepo.NewRepository(wrappedDB)
	slotRepository := slotRepo.NewRepository(wrappedDB)
	soldOutRepository := soldOutRepo.NewRepository(wrappedDB)
	customerRepository := customerRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	couponRepository := couponRepo.NewRepository(wrappedDB)
	adminRepository := adminRepo.NewRepository(wrappedDB)

	authSvc := authService.NewService(
		adminRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTL)*time.Hour,
		log,
	)

	// Режим первичной настройки: создаем администратора и выходим
	if *createAdmin != "" {
		email, password, ok := strings.Cut(*createAdmin, ":")
		if !ok {
			log.Fatal("-create-admin expects email:password")
		}
		admin, err := authSvc.CreateAdmin(context.Background(), email, password)
		if err != nil {
			log.Fatal("Failed to create admin: %v", err)
		}
		log.Info("Admin created: id=%s, email=%s", admin.ID, admin.Email)
		return
	}

	// Инициализируем интеграционных клиентов
	stripeClient := stripe.NewClient(
		cfg.Stripe.APIBaseURL,
		cfg.Stripe.SecretKey,
		time.Duration(cfg.Stripe.Timeout)*time.Second,
		log,
	)
	mailSender := mailer.NewMailer(mailer.Config{
		Enabled:  cfg.SMTP.Enabled,
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		ShopName: cfg.Business.ShopName,
	}, log)
	log.Info("Integration clients initialized (Stripe=%s timeout=%ds verify=%t, SMTP enabled=%t)",
		cfg.Stripe.APIBaseURL, cfg.Stripe.Timeout, cfg.Stripe.VerifyPayment, cfg.SMTP.Enabled)
	if !cfg.Stripe.VerifyPayment {
		log.Warn("Stripe payment verification is DISABLED: reservations are accepted without checking the payment intent")
	}

	// Инициализируем use cases
	getDailySlotsUseCase := getDailySlotsUC.NewUseCase(
		slotRepository,
		soldOutRepository,
		reservationRepository,
		txMgr,
		location,
		log,
	)
	quoteReservationUseCase := quoteReservationUC.NewUseCase(
		menuRepository,
		couponRepository,
		cfg.Business.Currency,
		log,
	)
	createPaymentIntentUseCase := createPaymentIntentUC.NewUseCase(
		quoteReservationUseCase,
		stripeClient,
		metricsCollector,
		cfg.Business.ShopName,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		quoteReservationUseCase,
		slotRepository,
		soldOutRepository,
		reservationRepository,
		customerRepository,
		couponRepository,
		stripeClient,
		mailSender,
		metricsCollector,
		txMgr,
		createReservationUC.Options{
			VerifyPayment: cfg.Stripe.VerifyPayment,
			Location:      location,
			MailTimeout:   mailTimeout,
		},
		log,
	)

	// Инициализируем сервисы
	menuSvc := menuService.NewService(menuRepository, log)
	slotsSvc := slotsService.NewService(slotRepository, soldOutRepository, txMgr, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, couponRepository, txMgr, log)
	couponsSvc := couponsService.NewService(couponRepository, log)
	dashboardSvc := dashboardService.NewService(reservationRepository, slotRepository, soldOutRepository, location, log)

	// Инициализируем handlers
	getDailySlots := getDailySlotsHandler.NewHandler(getDailySlotsUseCase, log)
	quoteReservation := quoteReservationHandler.NewHandler(quoteReservationUseCase, log)
	createPaymentIntent := createPaymentIntentHandler.NewHandler(createPaymentIntentUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	menuItems := menuItemsHandler.NewHandler(menuSvc, log)
	slots := slotsHandler.NewHandler(slotsSvc, log)
	reservations := reservationsHandler.NewHandler(reservationsSvc, log)
	coupons := couponsHandler.NewHandler(couponsSvc, log)
	dashboard := dashboardHandler.NewHandler(dashboardSvc, log)
	adminAuth := adminAuthHandler.NewHandler(authSvc, adminAuthHandler.CookieConfig{
		Name:   cfg.Auth.CookieName,
		Secure: cfg.Auth.CookieSecure,
	}, log)

	// Ограничение частоты публичных POST запросов
	rateLimit := func(next http.Handler) http.Handler { return next }
	var redisClient *redis.Client
	if cfg.RateLimit.Enabled {
		window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second

		var limiter middleware.Limiter
		if cfg.Redis.Enabled {
			redisClient = redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
			if err := redisClient.Ping(pingCtx).Err(); err != nil {
				log.Warn("Redis is not reachable at %s: %v (requests will pass until it recovers)", cfg.Redis.Addr, err)
			}
			cancelPing()
			limiter = middleware.NewRedisLimiter(redisClient, "ratelimit", window, cfg.RateLimit.MaxRequests)
			log.Info("Rate limit via Redis (addr=%s, %d req / %ds)", cfg.Redis.Addr, cfg.RateLimit.MaxRequests, cfg.RateLimit.WindowSeconds)
		} else {
			limiter = middleware.NewLocalLimiter(window, cfg.RateLimit.MaxRequests)
			log.Info("Rate limit in memory (%d req / %ds)", cfg.RateLimit.MaxRequests, cfg.RateLimit.WindowSeconds)
		}

		proxies, err := middleware.NewTrustedProxies(cfg.RateLimit.TrustedProxies)
		if err != nil {
			log.Fatal("Invalid rate_limit.trusted_proxies: %v", err)
		}
		rateLimit = middleware.RateLimit(limiter, window, proxies, log)
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (сайт бронирования)
	// ============================================================

	api.HandleFunc("/menu-items", menuItems.List).Methods(http.MethodGet)
	api.HandleFunc("/slots/daily", getDailySlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/quote", quoteReservation.Handle).Methods(http.MethodPost)
	api.Handle("/payment-intents", rateLimit(http.HandlerFunc(createPaymentIntent.Handle))).Methods(http.MethodPost)
	api.Handle("/reservations", rateLimit(http.HandlerFunc(createReservation.Handle))).Methods(http.MethodPost)

	// Вход администратора (без токена)
	api.Handle("/admin/login", rateLimit(http.HandlerFunc(adminAuth.Login))).Methods(http.MethodPost)
	api.HandleFunc("/admin/logout", adminAuth.Logout).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют JWT администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(authSvc, cfg.Auth.CookieName, log))

	admin.HandleFunc("/me", adminAuth.Me).Methods(http.MethodGet)
	admin.HandleFunc("/dashboard", dashboard.Handle).Methods(http.MethodGet)

	// --- Меню ---
	admin.HandleFunc("/menu-items", menuItems.Create).Methods(http.MethodPost)
	admin.HandleFunc("/menu-items/{menuId}", menuItems.Update).Methods(http.MethodPut)
	admin.HandleFunc("/menu-items/{menuId}", menuItems.Delete).Methods(http.MethodDelete)

	// --- Слоты и sold-out ---
	admin.HandleFunc("/slots", slots.List).Methods(http.MethodGet)
	admin.HandleFunc("/slots", slots.Create).Methods(http.MethodPost)
	admin.HandleFunc("/slots/{slotId}", slots.Update).Methods(http.MethodPut)
	admin.HandleFunc("/slots/{slotId}", slots.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/slots/{slotId}/sold-out/toggle", slots.ToggleSoldOut).Methods(http.MethodPost)
	admin.HandleFunc("/sold-out", slots.ListSoldOut).Methods(http.MethodGet)

	// --- Бронирования ---
	admin.HandleFunc("/reservations", reservations.List).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/export", reservations.Export).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{reservationId}", reservations.Get).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{reservationId}", reservations.Cancel).Methods(http.MethodDelete)

	// --- Купоны ---
	admin.HandleFunc("/coupons", coupons.List).Methods(http.MethodGet)
	admin.HandleFunc("/coupons", coupons.Create).Methods(http.MethodPost)
	admin.HandleFunc("/coupons/{couponId}/toggle", coupons.Toggle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(cfg.CORS.AllowedOrigins)(r),
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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся отправки писем-подтверждений
	createReservationUseCase.Wait()

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
