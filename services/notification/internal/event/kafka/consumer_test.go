package kafka

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// fakeReader отдаёт сообщения по очереди, затем io.EOF как закрытый reader
type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafka.Message
	committed []int64
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return kafka.Message{}, err
	}
	if len(r.msgs) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error { return nil }

type fakeDLQ struct {
	failures int
	msgs     []kafka.Message
	causes   []error
}

func (d *fakeDLQ) Publish(_ context.Context, m kafka.Message, cause error) error {
	if d.failures > 0 {
		d.failures--
		return errors.New("dlq unavailable")
	}
	d.msgs = append(d.msgs, m)
	d.causes = append(d.causes, cause)
	return nil
}

func newMsg(offset int64) kafka.Message {
	return kafka.Message{Topic: "payment-topic", Partition: 0, Offset: offset, Value: []byte(`{}`)}
}

func testConfig(maxAttempts int) ConsumerConfig {
	return ConsumerConfig{Topic: "payment-topic", MaxAttempts: maxAttempts, BackoffBase: time.Millisecond}
}

func TestConsumer_ProcessesInOrderAndCommits(t *testing.T) {
	reader := &fakeReader{msgs: []kafka.Message{newMsg(1), newMsg(2), newMsg(3)}}
	dlq := &fakeDLQ{}

	var handled []int64
	handle := func(_ context.Context, m kafka.Message) error {
		handled = append(handled, m.Offset)
		return nil
	}

	c := NewConsumer(zaptest.NewLogger(t), reader, handle, dlq, testConfig(3))
	require.NoError(t, c.Start(context.Background()))

	assert.Equal(t, []int64{1, 2, 3}, handled)
	assert.Equal(t, []int64{1, 2, 3}, reader.committed)
	assert.Empty(t, dlq.msgs)
}

func TestConsumer_RetriesTransientErrors(t *testing.T) {
	reader := &fakeReader{msgs: []kafka.Message{newMsg(7)}}
	dlq := &fakeDLQ{}

	calls := 0
	handle := func(context.Context, kafka.Message) error {
		calls++
		if calls < 3 {
			return errors.New("mongo timeout")
		}
		return nil
	}

	c := NewConsumer(zaptest.NewLogger(t), reader, handle, dlq, testConfig(3))
	require.NoError(t, c.Start(context.Background()))

	assert.Equal(t, 3, calls)
	assert.Equal(t, []int64{7}, reader.committed)
	assert.Empty(t, dlq.msgs)
}

func TestConsumer_DeadLetters(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCalls int
	}{
		{name: "retries exhausted", err: errors.New("mongo down"), wantCalls: 3},
		{name: "decode error is not retried", err: &DecodeError{Message: "invalid JSON payload"}, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := &fakeReader{msgs: []kafka.Message{newMsg(5)}}
			dlq := &fakeDLQ{failures: 1}

			calls := 0
			handle := func(context.Context, kafka.Message) error {
				calls++
				return tt.err
			}

			c := NewConsumer(zaptest.NewLogger(t), reader, handle, dlq, testConfig(3))
			require.NoError(t, c.Start(context.Background()))

			assert.Equal(t, tt.wantCalls, calls)
			require.Len(t, dlq.msgs, 1)
			assert.Equal(t, int64(5), dlq.msgs[0].Offset)
			assert.ErrorIs(t, dlq.causes[0], tt.err)
			// commit только после успешной публикации в DLQ
			assert.Equal(t, []int64{5}, reader.committed)
		})
	}
}

func TestConsumer_StopsOnCancel(t *testing.T) {
	reader := &fakeReader{msgs: []kafka.Message{newMsg(1)}}
	dlq := &fakeDLQ{}

	ctx, cancel := context.WithCancel(context.Background())
	handle := func(context.Context, kafka.Message) error {
		cancel()
		return errors.New("interrupted")
	}

	c := NewConsumer(zaptest.NewLogger(t), reader, handle, dlq, ConsumerConfig{Topic: "payment-topic", MaxAttempts: 3, BackoffBase: time.Hour})
	require.NoError(t, c.Start(ctx))

	assert.Empty(t, reader.committed)
	assert.Empty(t, dlq.msgs)
}
