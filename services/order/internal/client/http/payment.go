package httpclient

import (
	"context"
	"net/http"
	"strings"

	"github.com/shestoi/GoCommerce/services/order/internal/service"
)

// PaymentClient отправляет запросы на оплату: POST {baseURL}
type PaymentClient struct {
	baseURL string
	client  *http.Client
}

// NewPaymentClient создаёт клиента платёжного сервиса
func NewPaymentClient(baseURL string, client *http.Client) *PaymentClient {
	return &PaymentClient{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

type paymentCustomer struct {
	ID        string `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

type paymentRequest struct {
	Amount         float64         `json:"amount"`
	PaymentMethod  string          `json:"paymentMethod"`
	OrderID        int64           `json:"orderId"`
	OrderReference string          `json:"orderReference"`
	Customer       paymentCustomer `json:"customer"`
}

// RequestOrderPayment возвращает id созданного платежа
func (c *PaymentClient) RequestOrderPayment(ctx context.Context, req service.PaymentRequest) (int64, error) {
	resp, err := doJSON(ctx, c.client, http.MethodPost, c.baseURL, paymentRequest{
		Amount:         req.Amount,
		PaymentMethod:  string(req.PaymentMethod),
		OrderID:        req.OrderID,
		OrderReference: req.OrderReference,
		Customer: paymentCustomer{
			ID:        req.Customer.ID,
			Firstname: req.Customer.Firstname,
			Lastname:  req.Customer.Lastname,
			Email:     req.Customer.Email,
		},
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return 0, statusError("payment service", resp)
	}

	var paymentID int64
	if err := decode(resp, &paymentID); err != nil {
		return 0, err
	}
	return paymentID, nil
}
