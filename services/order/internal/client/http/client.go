// Package httpclient REST-адаптеры к внешним сервисам: справочник покупателей,
// каталог товаров и платёжный сервис. Реализуют интерфейсы service слоя.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/shestoi/GoCommerce/platform/observability"
)

// maxErrorBody сколько байт тела ошибки попадает в сообщение
const maxErrorBody = 512

// StatusError неожиданный HTTP статус от внешнего сервиса
type StatusError struct {
	Service string
	Status  int
	Body    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s responded %d %s: %s", e.Service, e.Status, http.StatusText(e.Status), e.Body)
}

// doJSON выполняет запрос с JSON телом (если in != nil) и пробрасывает trace context.
// Закрывать resp.Body должен вызывающий.
func doJSON(ctx context.Context, c *http.Client, method, url string, in any) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	observability.InjectHTTP(ctx, req.Header)

	resp, err := c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	return resp, nil
}

func statusError(service string, resp *http.Response) *StatusError {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{Service: service, Status: resp.StatusCode, Body: string(bytes.TrimSpace(b))}
}

func decode(resp *http.Response, out any) error {
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
