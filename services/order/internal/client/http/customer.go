package httpclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/shestoi/GoCommerce/services/order/internal/service"
)

// CustomerClient ходит в справочник покупателей: GET {baseURL}/{id}
type CustomerClient struct {
	baseURL string
	client  *http.Client
}

// NewCustomerClient создаёт клиента справочника покупателей
func NewCustomerClient(baseURL string, client *http.Client) *CustomerClient {
	return &CustomerClient{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

type customerResponse struct {
	ID        string           `json:"id"`
	Firstname string           `json:"firstname"`
	Lastname  string           `json:"lastname"`
	Email     string           `json:"email"`
	Address   *addressResponse `json:"address"`
}

type addressResponse struct {
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	ZipCode     string `json:"zipCode"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
}

// FindCustomerByID: 200 -> покупатель, 404 -> found=false, прочее -> ошибка
func (c *CustomerClient) FindCustomerByID(ctx context.Context, id string) (service.Customer, bool, error) {
	resp, err := doJSON(ctx, c.client, http.MethodGet, c.baseURL+"/"+url.PathEscape(id), nil)
	if err != nil {
		return service.Customer{}, false, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return service.Customer{}, false, nil
	case !isSuccess(resp.StatusCode):
		return service.Customer{}, false, statusError("customer service", resp)
	}

	var body customerResponse
	if err := decode(resp, &body); err != nil {
		return service.Customer{}, false, err
	}

	customer := service.Customer{
		ID:        body.ID,
		Firstname: body.Firstname,
		Lastname:  body.Lastname,
		Email:     body.Email,
	}
	if a := body.Address; a != nil {
		customer.Address = &service.Address{
			Street:      a.Street,
			HouseNumber: a.HouseNumber,
			ZipCode:     a.ZipCode,
			City:        a.City,
			State:       a.State,
			Country:     a.Country,
		}
	}
	return customer, true, nil
}
