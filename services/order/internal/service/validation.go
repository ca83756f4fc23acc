package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shestoi/GoCommerce/services/order/internal/repository"
)

// сообщения по паре поле.тег
var validationMessages = map[string]string{
	"amount.gt":                    "Order amount must be greater than 0",
	"amount.gte":                   "Order amount must be at least 0.01",
	"amount.lt":                    "Order amount is too large",
	"paymentMethod.required":       "Payment method is required",
	"paymentMethod.payment_method": "Payment method is not supported",
	"customerId.notblank":          "Customer ID is required",
	"products.required":            "You should purchase at least one product",
	"products.min":                 "You should purchase at least one product",
	"productId.required":           "Product ID is required",
	"productId.gt":                 "Product ID must be positive",
	"productId.lte":                "Product ID is out of range",
	"quantity.gt":                  "Product quantity must be greater than 0",
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("field"); name != "" {
			return name
		}
		return f.Name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
		return repository.PaymentMethod(fl.Field().String()).Valid()
	})
	return v
}

// validate проверяет вход и собирает все нарушения в *ValidationError.
// Ключи полей: amount, customerId, products[0].quantity и т.д.
func (s *OrderService) validate(input CreateOrderInput) error {
	err := s.validator.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := fe.Namespace()
		if i := strings.IndexByte(key, '.'); i >= 0 {
			key = key[i+1:]
		}
		msg, ok := validationMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = "invalid value"
		}
		fields[key] = msg
	}
	return &ValidationError{Fields: fields}
}
