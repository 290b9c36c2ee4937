package main

import (
	"github.com/joho/godotenv"

	accounthandler "tripwise/internal/accounts/handler"
	accountrepository "tripwise/internal/accounts/repository"
	accountservice "tripwise/internal/accounts/service"
	accountvalidator "tripwise/internal/accounts/validator"
	"tripwise/internal/auth"
	bookinghandler "tripwise/internal/bookings/handler"
	bookingrepository "tripwise/internal/bookings/repository"
	bookingservice "tripwise/internal/bookings/service"
	bookingvalidator "tripwise/internal/bookings/validator"
	"tripwise/internal/catalog/cache"
	"tripwise/internal/catalog/data"
	cataloghandler "tripwise/internal/catalog/handler"
	catalogservice "tripwise/internal/catalog/service"
	"tripwise/internal/health"
	"tripwise/pkg/app"
	"tripwise/pkg/config"
	"tripwise/pkg/contracts"
	"tripwise/pkg/kafka"
)

const ServiceName = "tripwise-api"

func main() {
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	cfg.SetRedis()
	defer cfg.Client.GracefulShutdown()

	cfg.Log.Info("Starting API server")

	appHandler, healthHandler := initHandlers(cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(appHandler, healthHandler)
	serverApp.Run()
}

func initHandlers(cfg *config.Config) (contracts.Handler, contracts.Handler) {
	accountRepo := accountrepository.NewMongoAccountRepository(cfg)
	bookingRepo := bookingrepository.NewMongoBookingRepository(cfg)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authmw := auth.NewMiddleware(tokens, accountRepo, cfg.Log)

	producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaBookingEventsTopic, cfg.Log)

	accountService := accountservice.NewAccountService(
		accountRepo,
		bookingRepo,
		accountvalidator.NewAccountValidator(cfg.Log),
		tokens,
		cfg,
	)
	bookingService := bookingservice.NewBookingService(
		bookingRepo,
		bookingvalidator.NewBookingValidator(cfg.Log),
		producer,
		cfg,
	)
	catalogService := catalogservice.NewCatalogService(
		data.Restaurants(),
		data.Flights(),
		data.Hotels(),
		data.Cars(),
		cache.New(cfg.Client.Redis, cfg.CatalogCacheTTL, cfg.Log),
		cfg,
	)

	appHandler := contracts.Compose(
		accounthandler.NewAuthHandler(accountService, authmw, cfg.TokenTTL, cfg.IsProduction(), cfg.Log),
		accounthandler.NewAccountHandler(accountService, authmw, cfg.Log),
		bookinghandler.NewBookingHandler(bookingService, authmw, cfg.Log),
		cataloghandler.NewCatalogHandler(catalogService, authmw, cfg.Log),
	)
	healthHandler := health.NewHandler(cfg.Client.Mongo, cfg.Log)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)
	return appHandler, healthHandler
}
