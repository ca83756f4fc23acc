package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/shestoi/GoCommerce/platform/observability"
	"github.com/shestoi/GoCommerce/services/payment/internal/service"
)

// Handler HTTP-обработчики Payment Service
type Handler struct {
	paymentService *service.PaymentService
	logger         *zap.Logger
}

// NewHandler создаёт HTTP handler
func NewHandler(paymentService *service.PaymentService, logger *zap.Logger) *Handler {
	return &Handler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// CustomerRequest плательщик в теле запроса
type CustomerRequest struct {
	ID        string `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

// PaymentRequest тело POST /api/v1/payments
type PaymentRequest struct {
	Amount         float64         `json:"amount"`
	PaymentMethod  string          `json:"paymentMethod"`
	OrderID        int64           `json:"orderId"`
	OrderReference string          `json:"orderReference"`
	Customer       CustomerRequest `json:"customer"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Errors map[string]string `json:"errors"`
}

// CreatePayment POST /api/v1/payments -> 200 и id платежа
func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	id, err := h.paymentService.ProcessPayment(r.Context(), service.ProcessPaymentInput{
		Amount:         req.Amount,
		PaymentMethod:  req.PaymentMethod,
		OrderID:        req.OrderID,
		OrderReference: req.OrderReference,
		Customer: service.Customer{
			ID:        req.Customer.ID,
			Firstname: req.Customer.Firstname,
			Lastname:  req.Customer.Lastname,
			Email:     req.Customer.Email,
		},
	})
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			writeJSON(w, http.StatusBadRequest, validationResponse{Errors: ve.Fields})
			return
		}
		observability.L(r.Context(), h.logger).Error("payment failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, id)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
