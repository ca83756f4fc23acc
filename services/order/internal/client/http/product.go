package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/shestoi/GoCommerce/services/order/internal/service"
)

// ProductClient резервирует товары в каталоге: POST {baseURL}/purchase
type ProductClient struct {
	baseURL string
	client  *http.Client
}

// NewProductClient создаёт клиента каталога
func NewProductClient(baseURL string, client *http.Client) *ProductClient {
	return &ProductClient{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

type purchaseRequest struct {
	ProductID int64   `json:"productId"`
	Quantity  float64 `json:"quantity"`
}

type purchaseResponse struct {
	ProductID   int64   `json:"productId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
}

// PurchaseProducts отправляет весь список одним запросом.
// Любой не-2xx статус превращается в *service.BusinessError.
func (c *ProductClient) PurchaseProducts(ctx context.Context, items []service.PurchaseRequest) ([]service.PurchasedProduct, error) {
	body := make([]purchaseRequest, 0, len(items))
	for _, it := range items {
		body = append(body, purchaseRequest{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	resp, err := doJSON(ctx, c.client, http.MethodPost, c.baseURL+"/purchase", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, &service.BusinessError{Message: fmt.Sprintf(
			"An error occurred while purchasing products: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))}
	}

	var out []purchaseResponse
	if err := decode(resp, &out); err != nil {
		return nil, err
	}

	purchased := make([]service.PurchasedProduct, 0, len(out))
	for _, p := range out {
		purchased = append(purchased, service.PurchasedProduct(p))
	}
	return purchased, nil
}
