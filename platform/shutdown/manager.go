package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// Manager выполняет graceful shutdown сервиса.
// Хуки выполняются в порядке, обратном регистрации: сначала закрываются входы
// (HTTP сервер, consumers), затем то, от чего они зависят (publishers, пулы БД).
type Manager struct {
	timeout time.Duration
	logger  *zap.Logger

	mu    sync.Mutex
	hooks []hook
}

type hook struct {
	name string
	fn   func(context.Context) error
}

// New создаёт Manager; timeout ограничивает каждый хук
func New(timeout time.Duration, logger *zap.Logger) *Manager {
	return &Manager{timeout: timeout, logger: logger}
}

// Add регистрирует хук остановки
func (m *Manager) Add(name string, fn func(context.Context) error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, hook{name: name, fn: fn})
}

// Wait блокируется до SIGINT/SIGTERM и затем выполняет хуки
func (m *Manager) Wait() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	s := <-sig
	m.logger.Info("Received shutdown signal, starting graceful shutdown", zap.String("signal", s.String()))
	m.Shutdown()
}

// Shutdown выполняет хуки без ожидания сигнала. Ошибка одного хука не прерывает остальные.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	hooks := make([]hook, len(m.hooks))
	copy(hooks, m.hooks)
	m.hooks = nil
	m.mu.Unlock()

	for i := len(hooks) - 1; i >= 0; i-- {
		h := hooks[i]
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		start := time.Now()
		err := h.fn(ctx)
		cancel()

		if err != nil {
			m.logger.Error("Shutdown function failed",
				zap.String("name", h.name),
				zap.Error(err),
				zap.Duration("duration", time.Since(start)))
			continue
		}
		m.logger.Info("Shutdown function completed",
			zap.String("name", h.name),
			zap.Duration("duration", time.Since(start)))
	}

	m.logger.Info("Graceful shutdown completed")
}

// ShutdownHTTPServer адаптирует http.Server.Shutdown к хуку
func ShutdownHTTPServer(srv interface {
	Shutdown(context.Context) error
}) func(context.Context) error {
	return srv.Shutdown
}

// DisconnectMongo адаптирует mongo.Client.Disconnect к хуку
func DisconnectMongo(client interface {
	Disconnect(context.Context) error
}) func(context.Context) error {
	return client.Disconnect
}

// ClosePool адаптирует pgxpool.Pool.Close к хуку
func ClosePool(pool interface{ Close() }) func(context.Context) error {
	return func(context.Context) error {
		pool.Close()
		return nil
	}
}

// CloseCloser адаптирует io.Closer (kafka.Reader, kafka.Writer) к хуку
func CloseCloser(c interface{ Close() error }) func(context.Context) error {
	return func(context.Context) error {
		return c.Close()
	}
}

// WaitFunc адаптирует блокирующее ожидание (например, WaitGroup фоновых задач) к хуку,
// прекращая ждать по таймауту хука
func WaitFunc(wait func()) func(context.Context) error {
	return func(ctx context.Context) error {
		done := make(chan struct{})
		go func() {
			wait()
			close(done)
		}()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
