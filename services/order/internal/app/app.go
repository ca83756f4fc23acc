package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	platformhealth "github.com/shestoi/GoCommerce/platform/health/http"
	platformkafka "github.com/shestoi/GoCommerce/platform/kafka"
	platformlogging "github.com/shestoi/GoCommerce/platform/logging"
	"github.com/shestoi/GoCommerce/platform/observability"
	platformshutdown "github.com/shestoi/GoCommerce/platform/shutdown"
	httpapi "github.com/shestoi/GoCommerce/services/order/internal/api/http"
	httpclient "github.com/shestoi/GoCommerce/services/order/internal/client/http"
	"github.com/shestoi/GoCommerce/services/order/internal/config"
	kafkaevent "github.com/shestoi/GoCommerce/services/order/internal/event/kafka"
	"github.com/shestoi/GoCommerce/services/order/internal/repository"
	"github.com/shestoi/GoCommerce/services/order/internal/repository/memory"
	"github.com/shestoi/GoCommerce/services/order/internal/repository/postgres"
	"github.com/shestoi/GoCommerce/services/order/internal/service"
	"github.com/shestoi/GoCommerce/services/order/migrations"
)

// App зависимости Order Service, собранные для запуска и graceful shutdown
type App struct {
	logger      *zap.Logger
	httpServer  *http.Server
	shutdownMgr *platformshutdown.Manager
	wg          sync.WaitGroup
}

// Build собирает граф зависимостей Order Service
func Build(cfg config.Config) (*App, error) {
	const op = "app.Build"
	ctx := context.Background()

	logger, err := platformlogging.New(platformlogging.Config{
		ServiceName: "order",
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
		orderRepo repository.OrderRepository
		checks    []platformhealth.Check
	)
	switch cfg.Storage {
	case config.StorageMemory:
		logger.Warn("using in-memory order storage, orders are lost on restart")
		orderRepo = memory.NewMemoryRepository()
	default:
		pool, err := connectPostgres(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		shutdownMgr.Add("postgres_pool", platformshutdown.ClosePool(pool))
		checks = append(checks, platformhealth.Check{Name: "postgres", Fn: pool.Ping})
		orderRepo = postgres.NewRepository(pool)
	}

	writer := platformkafka.NewWriter(cfg.Kafka, cfg.OrderTopic)
	publisher := kafkaevent.NewOrderConfirmationPublisher(logger, writer, cfg.OrderTopic)
	shutdownMgr.Add("kafka_writer", platformshutdown.CloseCloser(publisher))

	httpClient := &http.Client{Timeout: cfg.HTTPClientTimeout}
	orderService := service.NewOrderService(
		logger,
		httpclient.NewCustomerClient(cfg.CustomerServiceURL, httpClient),
		httpclient.NewProductClient(cfg.ProductServiceURL, httpClient),
		httpclient.NewPaymentClient(cfg.PaymentServiceURL, httpClient),
		publisher,
		orderRepo,
	)

	router := httpapi.NewRouter(httpapi.NewHandler(orderService, logger), logger, checks...)
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	// регистрируется последним, значит останавливается первым
	shutdownMgr.Add("http_server", platformshutdown.ShutdownHTTPServer(httpServer))

	return &App{
		logger:      logger,
		httpServer:  httpServer,
		shutdownMgr: shutdownMgr,
	}, nil
}

func connectPostgres(ctx context.Context, cfg config.Config, logger *zap.Logger) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	logger.Info("PostgreSQL connection established")

	if cfg.RunMigrations {
		// соединения принадлежат pool, *sql.DB нужен только goose
		if err := migrations.Up(ctx, stdlib.OpenDBFromPool(pool)); err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("migrations applied")
	}
	return pool, nil
}

// Run запускает HTTP сервер и блокируется до сигнала остановки
func (a *App) Run() error {
	defer platformlogging.Sync(a.logger)

	a.logger.Info("Starting Order service", zap.String("addr", a.httpServer.Addr))

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	a.shutdownMgr.Wait()

	a.wg.Wait()
	a.logger.Info("Order service stopped")
	return nil
}
