package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	platformhealth "github.com/shestoi/GoCommerce/platform/health/http"
	platformkafka "github.com/shestoi/GoCommerce/platform/kafka"
	platformlogging "github.com/shestoi/GoCommerce/platform/logging"
	"github.com/shestoi/GoCommerce/platform/observability"
	platformshutdown "github.com/shestoi/GoCommerce/platform/shutdown"
	httpapi "github.com/shestoi/GoCommerce/services/notification/internal/api/http"
	"github.com/shestoi/GoCommerce/services/notification/internal/config"
	"github.com/shestoi/GoCommerce/services/notification/internal/email"
	eventkafka "github.com/shestoi/GoCommerce/services/notification/internal/event/kafka"
	"github.com/shestoi/GoCommerce/services/notification/internal/repository"
	"github.com/shestoi/GoCommerce/services/notification/internal/repository/memory"
	mongorepo "github.com/shestoi/GoCommerce/services/notification/internal/repository/mongo"
	"github.com/shestoi/GoCommerce/services/notification/internal/service"
	"github.com/shestoi/GoCommerce/services/notification/internal/templates"
)

// App содержит все зависимости для запуска и корректного shutdown Notification Service
type App struct {
	logger      *zap.Logger
	httpServer  *http.Server
	consumers   []*eventkafka.Consumer
	shutdownMgr *platformshutdown.Manager

	consumerCtx    context.Context
	stopConsumers  context.CancelFunc
	consumersWG    sync.WaitGroup
	httpServerDone sync.WaitGroup
}

// Build создаёт и настраивает все зависимости Notification Service
func Build(cfg config.Config) (*App, error) {
	const op = "app.Build"
	ctx := context.Background()

	logger, err := platformlogging.New(platformlogging.Config{
		ServiceName: "notification",
		Env:         string(cfg.AppEnv),
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: logger: %w", op, err)
	}
	cfg.Log(logger)

	shutdownMgr := platformshutdown.New(cfg.ShutdownTimeout, logger)

	otelShutdown, err := observability.Init(ctx, cfg.Observability)
	if err != nil {
		return nil, fmt.Errorf("%s: observability: %w", op, err)
	}
	shutdownMgr.Add("otel", otelShutdown)

	var (
		notificationRepo repository.NotificationRepository
		checks           []platformhealth.Check
	)
	switch cfg.Storage {
	case config.StorageMemory:
		logger.Warn("using in-memory notification storage, notifications are lost on restart")
		notificationRepo = memory.NewMemoryRepository()
	default:
		client, err := connectMongo(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		shutdownMgr.Add("mongo_client", platformshutdown.DisconnectMongo(client))
		checks = append(checks, platformhealth.Check{Name: "mongo", Fn: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		}})

		repo, err := mongorepo.NewRepository(ctx, client, cfg.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		notificationRepo = repo
	}

	renderer, err := templates.NewRenderer(logger, cfg.TemplatesDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var sender email.Sender
	if cfg.MailEnabled {
		sender = email.NewSMTPSender(logger, email.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.MailFrom,
			Timeout:  cfg.MailSendTimeout,
		})
		logger.Info("SMTP sender enabled", zap.String("host", cfg.SMTPHost), zap.Int("port", cfg.SMTPPort))
	} else {
		sender = email.NewNoOpSender(logger)
		logger.Warn("mail disabled, using no-op sender")
	}

	dispatcher := email.NewDispatcher(logger, renderer, sender, cfg.MailSendTimeout)
	shutdownMgr.Add("email_dispatcher", platformshutdown.WaitFunc(dispatcher.Wait))

	dlqPublisher := eventkafka.NewDLQPublisher(logger, platformkafka.NewWriter(cfg.Kafka, cfg.DLQTopic))
	shutdownMgr.Add("dlq_publisher", platformshutdown.CloseCloser(dlqPublisher))

	notificationService := service.NewNotificationService(logger, notificationRepo, dispatcher)

	consumers := []*eventkafka.Consumer{
		eventkafka.NewConsumer(logger,
			platformkafka.NewReader(cfg.Kafka, cfg.OrderTopic, cfg.OrderGroupID),
			eventkafka.OrderConfirmationHandler(notificationService),
			dlqPublisher,
			eventkafka.ConsumerConfig{Topic: cfg.OrderTopic, MaxAttempts: cfg.RetryMaxAttempts, BackoffBase: cfg.RetryBackoffBase},
		),
		eventkafka.NewConsumer(logger,
			platformkafka.NewReader(cfg.Kafka, cfg.PaymentTopic, cfg.PaymentGroupID),
			eventkafka.PaymentConfirmationHandler(notificationService),
			dlqPublisher,
			eventkafka.ConsumerConfig{Topic: cfg.PaymentTopic, MaxAttempts: cfg.RetryMaxAttempts, BackoffBase: cfg.RetryBackoffBase},
		),
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(checks...),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	consumerCtx, stopConsumers := context.WithCancel(context.Background())
	a := &App{
		logger:        logger,
		httpServer:    httpServer,
		consumers:     consumers,
		shutdownMgr:   shutdownMgr,
		consumerCtx:   consumerCtx,
		stopConsumers: stopConsumers,
	}

	// хуки выполняются в обратном порядке: HTTP, consumers, отправка писем, DLQ, Mongo, otel
	shutdownMgr.Add("kafka_consumers", a.shutdownConsumers)
	shutdownMgr.Add("http_server", platformshutdown.ShutdownHTTPServer(httpServer))

	return a, nil
}

func connectMongo(ctx context.Context, cfg config.Config, logger *zap.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	logger.Info("MongoDB connection established", zap.String("database", cfg.MongoDatabase))
	return client, nil
}

// shutdownConsumers отменяет чтение, ждёт текущие сообщения и закрывает readers
func (a *App) shutdownConsumers(ctx context.Context) error {
	a.stopConsumers()
	waitErr := platformshutdown.WaitFunc(a.consumersWG.Wait)(ctx)

	var errs []error
	if waitErr != nil {
		errs = append(errs, waitErr)
	}
	for _, c := range a.consumers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Run запускает сервис и блокируется до получения сигнала shutdown
func (a *App) Run() error {
	defer platformlogging.Sync(a.logger)

	a.logger.Info("Starting Notification service", zap.String("addr", a.httpServer.Addr))

	a.httpServerDone.Add(1)
	go func() {
		defer a.httpServerDone.Done()
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	for _, c := range a.consumers {
		a.consumersWG.Add(1)
		go func(c *eventkafka.Consumer) {
			defer a.consumersWG.Done()
			if err := c.Start(a.consumerCtx); err != nil {
				a.logger.Error("kafka consumer error", zap.Error(err))
			}
		}(c)
	}
	a.logger.Info("Kafka consumers started")

	a.shutdownMgr.Wait()

	a.httpServerDone.Wait()
	a.logger.Info("Notification service stopped")
	return nil
}
