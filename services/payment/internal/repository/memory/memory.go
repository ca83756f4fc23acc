package memory

import (
	"context"
	"sync"

	"github.com/shestoi/GoCommerce/services/payment/internal/repository"
)

// MemoryRepository хранит платежи в памяти процесса, ключ = OrderID
type MemoryRepository struct {
	mu       sync.Mutex
	nextID   int64
	payments map[int64]repository.Payment
}

// NewMemoryRepository создаёт пустое хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID:   1,
		payments: make(map[int64]repository.Payment),
	}
}

// Create проверка и вставка выполняются под одной блокировкой
func (r *MemoryRepository) Create(ctx context.Context, p repository.Payment) (repository.Payment, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.payments[p.OrderID]; ok {
		return existing, false, nil
	}

	p.ID = r.nextID
	r.nextID++
	r.payments[p.OrderID] = p
	return p, true, nil
}
