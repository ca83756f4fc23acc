package httpapi_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	httpapi "github.com/shestoi/GoCommerce/services/payment/internal/api/http"
	"github.com/shestoi/GoCommerce/services/payment/internal/repository/memory"
	"github.com/shestoi/GoCommerce/services/payment/internal/service"
	"github.com/shestoi/GoCommerce/services/payment/internal/service/mocks"
)

func TestCreatePayment(t *testing.T) {
	valid := `{"amount":50,"paymentMethod":"PAYPAL","orderId":1,"orderReference":"abc",` +
		`"customer":{"id":"c-1","firstname":"Jane","lastname":"Doe","email":"jane@x.com"}}`

	tests := []struct {
		name         string
		body         string
		wantStatus   int
		wantContains string
		publishes    bool
	}{
		{name: "created", body: valid, wantStatus: http.StatusOK, wantContains: "1", publishes: true},
		{name: "invalid json", body: `{`, wantStatus: http.StatusBadRequest, wantContains: "invalid JSON"},
		{
			name:         "validation",
			body:         `{"amount":0,"paymentMethod":"PAYPAL","orderId":1,"customer":{"firstname":"Jane","lastname":"Doe","email":"bad"}}`,
			wantStatus:   http.StatusBadRequest,
			wantContains: `"customer.email":"Customer email is not correctly formatted"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher := mocks.NewPaymentEventPublisher(t)
			if tt.publishes {
				publisher.On("PublishPaymentConfirmation", mock.Anything, mock.Anything).Return(nil).Once()
			}
			svc := service.NewPaymentService(zap.NewNop(), memory.NewMemoryRepository(), publisher)
			router := httpapi.NewRouter(httpapi.NewHandler(svc, zap.NewNop()), zap.NewNop())

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(tt.body))
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantContains)
		})
	}
}

func TestHealth(t *testing.T) {
	svc := service.NewPaymentService(zap.NewNop(), memory.NewMemoryRepository(), mocks.NewPaymentEventPublisher(t))
	router := httpapi.NewRouter(httpapi.NewHandler(svc, zap.NewNop()), zap.NewNop())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
