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
	"github.com/evproyectos/aventados-isw-server/internal/pkg/rabbitmq"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/server"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/sms"
	"github.com/evproyectos/aventados-isw-server/services/notifications/handler"
	"github.com/evproyectos/aventados-isw-server/services/notifications/repository"
	"github.com/evproyectos/aventados-isw-server/services/notifications/usecase"
	"github.com/labstack/echo/v4"
)

// startConsumer subscribes the handler on the configured broker and returns its health check and cleanup
func startConsumer(ctx context.Context, configs *models.Config, appName string, h *handler.EventHandler) (health.HealthChecker, func(context.Context) error, error) {
	switch configs.Broker.Type {
	case constants.BrokerNATS, "":
		client, err := natspkg.NewClient(configs.NATS.URL, appName)
		if err != nil {
			return nil, nil, err
		}
		cc, err := h.InitNATSConsumer(ctx, client)
		if err != nil {
			client.Close()
			return nil, nil, err
		}
		return health.PingChecker(client), func(context.Context) error {
			cc.Stop()
			client.Close()
			return nil
		}, nil
	case constants.BrokerNSQ:
		consumer, err := h.InitNSQConsumer(configs.NSQ)
		if err != nil {
			return nil, nil, err
		}
		// nsqd reachability is the consumer's own concern; it reconnects by itself
		return health.CheckerFunc(func(context.Context) error { return nil }), func(context.Context) error {
			consumer.Stop()
			return nil
		}, nil
	case constants.BrokerRabbitMQ:
		client, err := rabbitmq.NewClient(configs.RabbitMQ.URL, configs.RabbitMQ.Exchange)
		if err != nil {
			return nil, nil, err
		}
		if err := h.InitRabbitMQConsumer(ctx, client); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return health.ConnectionChecker(client), func(context.Context) error { return client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown broker type %q", configs.Broker.Type)
	}
}

func main() {
	appName := "notifier-service"
	configPath := "config/notifier.env"
	configs := config.InitConfig(configPath)

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
		logger.String("broker", configs.Broker.Type),
		logger.String("sms_provider", configs.SMS.Provider),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	sender, err := sms.NewSender(ctx, configs.SMS, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize SMS provider", logger.Err(err))
	}

	contactRepo := repository.NewContactRepository(postgresClient.GetDB())
	notifierUC, err := usecase.NewNotifierUC(configs, contactRepo, sender)
	if err != nil {
		zapLogger.Fatal("Failed to initialize notifier use case", logger.Err(err))
	}
	eventHandler := handler.NewEventHandler(notifierUC, nrApp)

	brokerChecker, stopConsumer, err := startConsumer(ctx, configs, appName, eventHandler)
	if err != nil {
		zapLogger.Fatal("Failed to start booking event consumer", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.PingChecker(postgresClient))
	healthService.AddChecker(configs.Broker.Type, brokerChecker)
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(context.Context) error { return postgresClient.Close() })
	srv.OnShutdown(stopConsumer)
	srv.OnShutdown(func(context.Context) error {
		cancel()
		return nil
	})
	if nrApp != nil {
		srv.OnShutdown(func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}
	zapLogger.Info("Notifier exiting gracefully")
}
