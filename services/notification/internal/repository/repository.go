package repository

import (
	"context"
	"errors"

	"github.com/shestoi/GoCommerce/services/notification/internal/model"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=NotificationRepository --dir=. --output=./mocks --outpkg=mocks

// ErrNotFound уведомление не найдено
var ErrNotFound = errors.New("notification not found")

// NotificationRepository хранилище уведомлений. Записи только добавляются.
type NotificationRepository interface {
	// Save сохраняет уведомление и возвращает присвоенный id
	Save(ctx context.Context, n model.Notification) (string, error)
	// GetByID возвращает уведомление или ErrNotFound
	GetByID(ctx context.Context, id string) (model.Notification, error)
}
