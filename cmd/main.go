package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/aplet360/pricing-service/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/aplet360/pricing-service/internal/api/handlers/get_availability"
	getListingPricingHandler "github.com/aplet360/pricing-service/internal/api/handlers/get_listing_pricing"
	getQuoteHandler "github.com/aplet360/pricing-service/internal/api/handlers/get_quote"
	listListingPricingHandler "github.com/aplet360/pricing-service/internal/api/handlers/list_listing_pricing"
	"github.com/aplet360/pricing-service/internal/api/middleware"
	"github.com/aplet360/pricing-service/internal/config"
	"github.com/aplet360/pricing-service/internal/domain"
	"github.com/aplet360/pricing-service/internal/infra/cache"
	availabilityRepo "github.com/aplet360/pricing-service/internal/infra/storage/availability"
	propertyRepo "github.com/aplet360/pricing-service/internal/infra/storage/property"
	bookingServiceClient "github.com/aplet360/pricing-service/internal/integrations/bookingservice"
	propertyServiceClient "github.com/aplet360/pricing-service/internal/integrations/propertyservice"
	availabilityService "github.com/aplet360/pricing-service/internal/service/availability"
	listingsService "github.com/aplet360/pricing-service/internal/service/listings"
	createBookingUC "github.com/aplet360/pricing-service/internal/usecase/create_booking"
	getAvailabilityUC "github.com/aplet360/pricing-service/internal/usecase/get_availability"
	getQuoteUC "github.com/aplet360/pricing-service/internal/usecase/get_quote"
	"github.com/aplet360/pricing-service/pkg/dbmetrics"
	"github.com/aplet360/pricing-service/pkg/logger"
	"github.com/aplet360/pricing-service/pkg/metrics"
)

// sources источники объектов и доступности, общие для всех use cases
type sources struct {
	properties   cache.PropertySource
	availability cache.AvailabilitySource
}

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting pricing-service...")
	log.Info("Configuration loaded from %s (source=%s, fail_open=%t)",
		configPath, cfg.Source.Kind, cfg.Availability.FailOpen)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Источники данных: API бэкенда или read-only реплика
	var src sources
	switch cfg.Source.Kind {
	case config.SourcePostgres:
		db, err := openDatabase(cfg.Database)
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
			log.Info("Database metrics collection started")
			src.properties = propertyRepo.NewRepository(wrappedDB)
			src.availability = availabilityRepo.NewRepository(wrappedDB)
		} else {
			src.properties = propertyRepo.NewRepository(db)
			src.availability = availabilityRepo.NewRepository(db)
		}

	default:
		client := propertyServiceClient.NewClient(
			cfg.PropertyService.URL,
			time.Duration(cfg.PropertyService.Timeout)*time.Second,
			log,
		)
		src.properties = client
		src.availability = client
		log.Info("Property service client initialized (url=%s, timeout=%ds)",
			cfg.PropertyService.URL, cfg.PropertyService.Timeout)
	}

	// Кэш поверх источников
	if cfg.Cache.Enabled {
		var remote cache.RemoteStore
		if cfg.Cache.MemcachedAddr != "" {
			remote = memcache.New(cfg.Cache.MemcachedAddr)
			log.Info("Shared cache enabled (memcached=%s)", cfg.Cache.MemcachedAddr)
		}

		propertyCache := cache.New[domain.Property]("property", cfg.Cache.MaxSize,
			cfg.Cache.PricingTTLDuration(), remote, metricsCollector, log)
		defer propertyCache.Stop()
		availabilityCache := cache.New[domain.AvailabilityData]("availability", cfg.Cache.MaxSize,
			cfg.Cache.AvailabilityTTLDuration(), remote, metricsCollector, log)
		defer availabilityCache.Stop()

		src.properties = cache.NewPropertyCache(src.properties, propertyCache)
		src.availability = cache.NewAvailabilityCache(src.availability, availabilityCache)
		log.Info("Cache enabled (max_size=%d, pricing_ttl=%ds, availability_ttl=%ds)",
			cfg.Cache.MaxSize, cfg.Cache.PricingTTL, cfg.Cache.AvailabilityTTL)
	}

	bookingClient := bookingServiceClient.NewClient(
		cfg.BookingService.URL,
		time.Duration(cfg.BookingService.Timeout)*time.Second,
		log,
	)

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(src.availability, cfg.Availability.FailOpen, metricsCollector, log)
	listingsSvc := listingsService.NewService(src.properties, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(availabilitySvc, log)
	getQuoteUseCase := getQuoteUC.NewUseCase(src.properties, availabilitySvc, metricsCollector, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		src.properties,
		availabilitySvc,
		bookingClient,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getQuote := getQuoteHandler.NewHandler(getQuoteUseCase, log)
	getListingPricing := getListingPricingHandler.NewHandler(listingsSvc, log)
	listListingPricing := listListingPricingHandler.NewHandler(listingsSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Календарь, цена и карточки объявлений
	api.HandleFunc("/properties/{propertyId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/properties/{propertyId}/quote", getQuote.Handle).Methods(http.MethodGet)
	api.HandleFunc("/properties/{propertyId}/pricing", getListingPricing.Handle).Methods(http.MethodGet)
	api.HandleFunc("/listings/pricing", listListingPricing.Handle).Methods(http.MethodGet)

	// Бронирование; Authorization передается в booking API как есть
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	g := &run.Group{}
	g.Add(func() error {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}, func(error) {
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
		)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server forced to shutdown: %v", err)
		}
	})
	g.Add(run.SignalHandler(context.Background(), syscall.SIGINT, syscall.SIGTERM))

	if err := g.Run(); err != nil {
		var sigErr run.SignalError
		if !errors.As(err, &sigErr) {
			log.Fatal("Server stopped with error: %v", err)
		}
		log.Info("Received signal %s", sigErr.Signal)
	}

	log.Info("Server stopped gracefully")
}

// openDatabase открывает пул соединений и проверяет доступность БД
func openDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, err
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
