package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shestoi/GoCommerce/services/payment/internal/repository"
)

func TestMemoryRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	first, created, err := repo.Create(ctx, repository.Payment{OrderID: 10, Amount: 50, TransactionID: "tx-1"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(1), first.ID)

	again, created, err := repo.Create(ctx, repository.Payment{OrderID: 10, Amount: 99, TransactionID: "tx-2"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first, again)

	other, created, err := repo.Create(ctx, repository.Payment{OrderID: 11, Amount: 1})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(2), other.ID)
}

func TestMemoryRepository_CreateConcurrentSameOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	const workers = 20
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		ids     = map[int64]struct{}{}
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, ok, err := repo.Create(ctx, repository.Payment{OrderID: 7, Amount: 5})
			assert.NoError(t, err)
			mu.Lock()
			defer mu.Unlock()
			if ok {
				created++
			}
			ids[p.ID] = struct{}{}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Len(t, ids, 1)
}
