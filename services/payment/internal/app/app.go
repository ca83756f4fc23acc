package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	platformkafka "github.com/shestoi/GoCommerce/platform/kafka"
	platformlogging "github.com/shestoi/GoCommerce/platform/logging"
	"github.com/shestoi/GoCommerce/platform/observability"
	platformshutdown "github.com/shestoi/GoCommerce/platform/shutdown"
	httpapi "github.com/shestoi/GoCommerce/services/payment/internal/api/http"
	"github.com/shestoi/GoCommerce/services/payment/internal/config"
	kafkaevent "github.com/shestoi/GoCommerce/services/payment/internal/event/kafka"
	"github.com/shestoi/GoCommerce/services/payment/internal/repository/memory"
	"github.com/shestoi/GoCommerce/services/payment/internal/service"
)

// App содержит все зависимости для запуска и корректного shutdown Payment Service
type App struct {
	logger      *zap.Logger
	httpServer  *http.Server
	shutdownMgr *platformshutdown.Manager
	wg          sync.WaitGroup
}

// Build создаёт и настраивает все зависимости Payment Service
func Build(cfg config.Config) (*App, error) {
	const op = "app.Build"

	logger, err := platformlogging.New(platformlogging.Config{
		ServiceName: "payment",
		Env:         string(cfg.AppEnv),
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: logger: %w", op, err)
	}
	cfg.Log(logger)

	shutdownMgr := platformshutdown.New(cfg.ShutdownTimeout, logger)

	otelShutdown, err := observability.Init(context.Background(), cfg.Observability)
	if err != nil {
		return nil, fmt.Errorf("%s: observability: %w", op, err)
	}
	shutdownMgr.Add("otel", otelShutdown)

	publisher := kafkaevent.NewPaymentConfirmationPublisher(logger, platformkafka.NewWriter(cfg.Kafka, cfg.PaymentTopic), cfg.PaymentTopic)
	shutdownMgr.Add("kafka_writer", platformshutdown.CloseCloser(publisher))

	// платежи хранятся в памяти и теряются при рестарте
	paymentService := service.NewPaymentService(logger, memory.NewMemoryRepository(), publisher)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(httpapi.NewHandler(paymentService, logger), logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
	}
	shutdownMgr.Add("http_server", platformshutdown.ShutdownHTTPServer(httpServer))

	return &App{
		logger:      logger,
		httpServer:  httpServer,
		shutdownMgr: shutdownMgr,
	}, nil
}

// Run запускает сервис и блокируется до получения сигнала shutdown
func (a *App) Run() error {
	defer platformlogging.Sync(a.logger)

	a.logger.Info("Starting Payment service", zap.String("addr", a.httpServer.Addr))

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	a.shutdownMgr.Wait()

	a.wg.Wait()
	a.logger.Info("Payment service stopped")
	return nil
}
