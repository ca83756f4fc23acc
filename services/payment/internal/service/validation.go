package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validationMessages = map[string]string{
	"amount.gt":              "Payment amount must be greater than 0",
	"paymentMethod.notblank": "Payment method is required",
	"orderId.gt":             "Order ID is required",
	"firstname.notblank":     "Customer firstname is required",
	"lastname.notblank":      "Customer lastname is required",
	"email.required":         "Customer email is required",
	"email.email":            "Customer email is not correctly formatted",
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
	return v
}

// validate собирает все нарушения; ключи вида amount, customer.email
func (s *PaymentService) validate(input ProcessPaymentInput) error {
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
