package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"mortgageschedule/internal/app/handlers"
	"mortgageschedule/internal/app/router"
	"mortgageschedule/internal/pkg/cleanup"
	"mortgageschedule/internal/pkg/config"
	mongodb "mortgageschedule/internal/pkg/db/mongo"
	redisdb "mortgageschedule/internal/pkg/db/redis"
	"mortgageschedule/internal/pkg/diagnostics"
	"mortgageschedule/internal/pkg/kafka/consumer"
	"mortgageschedule/internal/pkg/log_messages"
	"mortgageschedule/internal/pkg/logger"
	"mortgageschedule/internal/pkg/otel"
	"mortgageschedule/internal/pkg/pubsub"
	"mortgageschedule/internal/pkg/store/impl"
	"mortgageschedule/internal/pkg/store/impl/mortgage_applications"
	"mortgageschedule/internal/pkg/store/impl/mortgage_payments"
	"mortgageschedule/internal/pkg/store/repository"
	"mortgageschedule/internal/service/interfaces"
	servicekafka "mortgageschedule/internal/service/kafka"
	"mortgageschedule/internal/service/mortgage_schedule"

	gcppubsub "cloud.google.com/go/pubsub"
)

const shutdownTimeout = 10 * time.Second

var (
	loadConfig     = config.LoadFromConfig
	setupOtel      = otel.Setup
	connectMongoDB = mongodb.ConnectToMongoDB
	connectRedisDB = func(ctx context.Context, cfg config.RedisConfig) (*redisdb.RedisClient, error) {
		return redisdb.ConnectToRedis(ctx, cfg, nil)
	}
	newKafkaConsumer = func(cfg config.KafkaConfig) (interfaces.KafkaConsumerInterface, error) {
		c, err := consumer.NewKafkaConsumer(cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	newPublisher = func(ctx context.Context, cfg config.PubSubConfig) (interfaces.PubSubPublisherInterface, error) {
		p, err := pubsub.NewPublisher(ctx, cfg.ProjectID, cfg.NotificationTopic, gcppubsub.NewClient)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
)

// App owns every long-lived resource of the service.
type App struct {
	Cfg          *config.AppConfig
	MongoClient  *mongodb.MongoClient
	RedisClient  *redisdb.RedisClient
	Consumer     interfaces.KafkaConsumerInterface
	Publisher    interfaces.PubSubPublisherInterface
	OtelShutdown otel.ShutdownFunc
	HTTPServer   *http.Server
}

func New(ctx context.Context) (*App, error) {
	cfg, err := loadConfig()
	if err != nil {
		logger.CtxError(ctx, log_messages.FailedLoadingConfiguration, err)
		return nil, err
	}
	logger.Init(cfg.Logging.LogLevel)

	app := &App{Cfg: cfg}

	app.OtelShutdown, err = setupOtel(ctx, cfg.Otel)
	if err != nil {
		logger.CtxError(ctx, "Failed to set up tracing", err)
		return nil, err
	}

	app.MongoClient, err = connectMongoDB(ctx, cfg.Mongo)
	if err != nil {
		logger.CtxError(ctx, "Failed to connect to MongoDB", err)
		app.Shutdown(ctx)
		return nil, err
	}

	app.RedisClient, err = connectRedisDB(ctx, cfg.Redis)
	if err != nil {
		logger.CtxError(ctx, "Failed to connect to Redis", err)
		app.Shutdown(ctx)
		return nil, err
	}

	app.Consumer, err = newKafkaConsumer(cfg.Kafka)
	if err != nil {
		logger.CtxError(ctx, "Failed to create Kafka consumer", err)
		app.Shutdown(ctx)
		return nil, err
	}
	if err := app.Consumer.Subscribe(cfg.Kafka.ApplicationTopic); err != nil {
		logger.CtxError(ctx, "Failed to subscribe to application topic", err,
			slog.String("topic", cfg.Kafka.ApplicationTopic))
		app.Shutdown(ctx)
		return nil, err
	}

	if cfg.PubSub.ProjectID == "" || cfg.PubSub.NotificationTopic == "" {
		logger.Info("Pub/Sub notification topic not configured, schedule notifications disabled")
		return app, nil
	}
	app.Publisher, err = newPublisher(ctx, cfg.PubSub)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorPubSubClientCreation, err)
		app.Shutdown(ctx)
		return nil, err
	}
	logger.Info("successful pubsub client creation", slog.String("pubsub_topic", cfg.PubSub.NotificationTopic))

	return app, nil
}

// Handler assembles the schedule pipeline on top of the open connections.
func (a *App) Handler(ctx context.Context) http.Handler {
	applications := mortgage_applications.NewMortgageApplicationRepository(a.MongoClient)
	payments := mortgage_payments.NewMortgagePaymentRepository(a.MongoClient)
	store := impl.NewRecordStore(applications, payments)

	sink := diagnostics.NewRedisTraceSink(
		repository.NewRedisStoreAdapter(a.RedisClient.Client),
		a.Cfg.Schedule.TraceRetention,
	)
	executor := mortgageschedule.NewExecutor(store, sink)

	return router.SetupRouter(ctx, router.Dependencies{
		ServiceName:     a.Cfg.Otel.ServiceName,
		ScheduleHandler: handlers.NewScheduleHandler(executor, a.Publisher),
		TraceReader:     sink,
		KafkaService:    servicekafka.NewKafkaConsumerService(),
		Consumer:        a.Consumer,
	})
}

// Run serves HTTP and consumes application events until SIGINT, SIGTERM or ctx is done.
func (a *App) Run(ctx context.Context) error {
	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.HTTPServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", a.Cfg.Server.Port),
		Handler:           a.Handler(runCtx),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.CtxError(ctx, log_messages.ServerStartFailure, err)
			serveErr <- err
		}
	}()

	var err error
	select {
	case <-runCtx.Done():
	case err = <-serveErr:
	}
	stop()

	a.Shutdown(ctx)
	logger.CtxInfo(ctx, log_messages.ServerExiting)
	return err
}

// Shutdown closes all resources with a bounded timeout.
func (a *App) Shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	cleanup.CleanupResources(shutdownCtx, cleanup.Resources{
		Server:       a.HTTPServer,
		Consumer:     a.Consumer,
		Publisher:    a.Publisher,
		Mongo:        a.MongoClient,
		Redis:        a.RedisClient,
		OtelShutdown: a.OtelShutdown,
	})
}
