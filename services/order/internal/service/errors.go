package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrOrderNotFound сопоставляется через errors.Is с *NotFoundError
var ErrOrderNotFound = errors.New("order not found")

// NotFoundError заказа с таким id нет
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No order found with id %d", e.ID)
}

// Is позволяет проверять errors.Is(err, ErrOrderNotFound)
func (e *NotFoundError) Is(target error) bool {
	return target == ErrOrderNotFound
}

// BusinessError отказ по бизнес-правилу: покупатель не найден, каталог отклонил покупку.
// Ничего не сохранено.
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

// ValidationError запрос не прошёл валидацию; Fields: поле -> сообщение
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
