package kafka

import "fmt"

// DecodeError сообщение не удалось разобрать; повтор не поможет, сообщение уходит в DLQ
type DecodeError struct {
	Field   string
	Message string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decode %s: %s", e.Field, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
