package shutdown

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestManager_ShutdownRunsHooksInReverseOrder(t *testing.T) {
	m := New(time.Second, zap.NewNop())

	var order []string
	m.Add("pool", func(context.Context) error { order = append(order, "pool"); return nil })
	m.Add("failing", func(context.Context) error { order = append(order, "failing"); return errors.New("boom") })
	m.Add("http", func(context.Context) error { order = append(order, "http"); return nil })

	m.Shutdown()

	assert.Equal(t, []string{"http", "failing", "pool"}, order)
}

func TestWaitFunc_TimesOut(t *testing.T) {
	block := make(chan struct{})
	defer close(block)

	fn := WaitFunc(func() { <-block })
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, fn(ctx), context.DeadlineExceeded)
}
