package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/config"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/constants"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/database"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/health"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/logger"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/middleware"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	natspkg "github.com/evproyectos/aventados-isw-server/internal/pkg/nats"
	nrpkg "github.com/evproyectos/aventados-isw-server/internal/pkg/newrelic"
	nsqpkg "github.com/evproyectos/aventados-isw-server/internal/pkg/nsq"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/rabbitmq"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/server"
	bookingsGateway "github.com/evproyectos/aventados-isw-server/services/bookings/gateway"
	bookingsHandler "github.com/evproyectos/aventados-isw-server/services/bookings/handler"
	bookingsRepository "github.com/evproyectos/aventados-isw-server/services/bookings/repository"
	bookingsUsecase "github.com/evproyectos/aventados-isw-server/services/bookings/usecase"
	"github.com/evproyectos/aventados-isw-server/services/rides"
	ridesHandler "github.com/evproyectos/aventados-isw-server/services/rides/handler"
	ridesRepository "github.com/evproyectos/aventados-isw-server/services/rides/repository"
	ridesUsecase "github.com/evproyectos/aventados-isw-server/services/rides/usecase"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
)

// broker is what the service needs from whichever event transport is configured
type broker struct {
	publisher bookingsGateway.Publisher
	checker   health.HealthChecker
	close     func(context.Context) error
}

func connectBroker(configs *models.Config, appName string) (*broker, error) {
	switch configs.Broker.Type {
	case constants.BrokerNATS, "":
		client, err := natspkg.NewClient(configs.NATS.URL, appName)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for _, stream := range natspkg.DefaultStreamConfigs() {
			if err := client.EnsureStream(ctx, stream); err != nil {
				client.Close()
				return nil, err
			}
		}
		return &broker{
			publisher: client,
			checker:   health.PingChecker(client),
			close:     func(context.Context) error { client.Close(); return nil },
		}, nil
	case constants.BrokerNSQ:
		producer, err := nsqpkg.NewProducer(configs.NSQ.NSQDAddress, constants.TopicBookingEvents)
		if err != nil {
			return nil, err
		}
		return &broker{
			publisher: producer,
			checker:   health.PingChecker(producer),
			close:     func(context.Context) error { producer.Stop(); return nil },
		}, nil
	case constants.BrokerRabbitMQ:
		client, err := rabbitmq.NewClient(configs.RabbitMQ.URL, configs.RabbitMQ.Exchange)
		if err != nil {
			return nil, err
		}
		return &broker{
			publisher: client,
			checker:   health.ConnectionChecker(client),
			close:     func(context.Context) error { return client.Close() },
		}, nil
	default:
		return nil, fmt.Errorf("unknown broker type %q", configs.Broker.Type)
	}
}

func main() {
	appName := "rides-service"
	configPath := "config/rides.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("broker", configs.Broker.Type),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	eventBroker, err := connectBroker(configs, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to event broker", logger.Err(err))
	}

	// Rides
	rideRepo := ridesRepository.NewRideRepository(configs, postgresClient.GetDB())
	var rideCache rides.RideCache
	if configs.Search.CacheEnabled {
		rideCache = ridesRepository.NewRideCache(redisClient.GetClient(), configs.Search.CacheTTL)
	}
	rideUC, err := ridesUsecase.NewRideUC(configs, rideRepo, rideCache)
	if err != nil {
		zapLogger.Fatal("Failed to initialize ride use case", logger.Err(err))
	}
	rideHTTP, err := ridesHandler.NewHTTPHandler(rideUC, configs)
	if err != nil {
		zapLogger.Fatal("Failed to build GraphQL schema", logger.Err(err))
	}

	// Bookings
	bookingRepo := bookingsRepository.NewBookingRepository(configs, postgresClient.GetDB())
	allocator := bookingsUsecase.NewSeatAllocator(bookingRepo, rideRepo)
	bookingGW := bookingsGateway.NewBookingGW(eventBroker.publisher, configs.Broker.Type)
	bookingUC, err := bookingsUsecase.NewBookingUC(configs, allocator, bookingRepo, rideRepo, bookingGW, rideCache)
	if err != nil {
		zapLogger.Fatal("Failed to initialize booking use case", logger.Err(err))
	}
	bookingHTTP := bookingsHandler.NewHTTPHandler(bookingUC, configs, redisClient.GetClient())

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	// panic recovery first
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.PingChecker(postgresClient))
	healthService.AddChecker("redis", health.PingChecker(redisClient))
	healthService.AddChecker(configs.Broker.Type, eventBroker.checker)
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	rideHTTP.RegisterRoutes(e)
	bookingHTTP.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(context.Context) error { return postgresClient.Close() })
	srv.OnShutdown(func(context.Context) error { return redisClient.Close() })
	srv.OnShutdown(eventBroker.close)
	if nrApp != nil {
		srv.OnShutdown(func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}
	zapLogger.Info("Server exiting gracefully")
}
