package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/shestoi/GoCommerce/services/notification/internal/event"
	"github.com/shestoi/GoCommerce/services/notification/internal/model"
	"github.com/shestoi/GoCommerce/services/notification/internal/repository"
)

// MemoryRepository хранит уведомления в памяти процесса
type MemoryRepository struct {
	mu            sync.RWMutex
	nextID        int
	notifications map[string]model.Notification
	order         []string
}

// NewMemoryRepository создаёт пустое хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID:        1,
		notifications: make(map[string]model.Notification),
	}
}

// Save добавляет уведомление, id последовательные с 1
func (r *MemoryRepository) Save(ctx context.Context, n model.Notification) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n.ID = strconv.Itoa(r.nextID)
	r.nextID++
	r.notifications[n.ID] = clone(n)
	r.order = append(r.order, n.ID)
	return n.ID, nil
}

// GetByID возвращает уведомление по id
func (r *MemoryRepository) GetByID(ctx context.Context, id string) (model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.notifications[id]
	if !ok {
		return model.Notification{}, repository.ErrNotFound
	}
	return clone(n), nil
}

// All возвращает уведомления в порядке сохранения
func (r *MemoryRepository) All() []model.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Notification, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clone(r.notifications[id]))
	}
	return out
}

// clone копирует payload, чтобы сохранённое уведомление не менялось через указатели вызывающего
func clone(n model.Notification) model.Notification {
	if n.OrderConfirmation != nil {
		oc := *n.OrderConfirmation
		if oc.Customer.Address != nil {
			addr := *oc.Customer.Address
			oc.Customer.Address = &addr
		}
		oc.Products = append([]event.Product(nil), oc.Products...)
		n.OrderConfirmation = &oc
	}
	if n.PaymentConfirmation != nil {
		pc := *n.PaymentConfirmation
		n.PaymentConfirmation = &pc
	}
	return n
}
