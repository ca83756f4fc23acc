package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shestoi/GoCommerce/services/order/internal/repository"
)

// MemoryRepository in-memory реализация OrderRepository.
// Используется в тестах и при ORDER_STORAGE=memory. Id выдаются последовательно с 1,
// как у SERIAL колонок в PostgreSQL.
type MemoryRepository struct {
	mu        sync.RWMutex
	orders    map[int64]repository.Order
	lines     map[int64][]repository.OrderLine
	nextOrder int64
	nextLine  int64
	now       func() time.Time
}

// NewMemoryRepository создаёт пустой репозиторий
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		orders: make(map[int64]repository.Order),
		lines:  make(map[int64][]repository.OrderLine),
		now:    time.Now,
	}
}

// CreateWithLines сохраняет заказ и позиции под одной блокировкой
func (r *MemoryRepository) CreateWithLines(_ context.Context, order repository.Order, lines []repository.OrderLine) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextOrder++
	order.ID = r.nextOrder
	now := r.now().UTC()
	order.CreatedAt = now
	order.LastModifiedAt = now
	r.orders[order.ID] = order

	saved := make([]repository.OrderLine, 0, len(lines))
	for _, l := range lines {
		r.nextLine++
		l.ID = r.nextLine
		l.OrderID = order.ID
		saved = append(saved, l)
	}
	r.lines[order.ID] = saved

	return order.ID, nil
}

// List возвращает все заказы, отсортированные по id
func (r *MemoryRepository) List(_ context.Context) ([]repository.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]repository.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetByID получает заказ по id
func (r *MemoryRepository) GetByID(_ context.Context, id int64) (repository.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return repository.Order{}, repository.ErrNotFound
	}
	return order, nil
}

// ListLines возвращает копию позиций заказа; для неизвестного заказа пустой список
func (r *MemoryRepository) ListLines(_ context.Context, orderID int64) ([]repository.OrderLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]repository.OrderLine, len(r.lines[orderID]))
	copy(out, r.lines[orderID])
	return out, nil
}
