package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shestoi/GoCommerce/platform/observability"
	"github.com/shestoi/GoCommerce/services/order/internal/repository"
	"github.com/shestoi/GoCommerce/services/order/internal/service"
)

// Handler HTTP-обработчики Order Service
type Handler struct {
	orderService *service.OrderService
	logger       *zap.Logger
}

// NewHandler создаёт HTTP handler
func NewHandler(orderService *service.OrderService, logger *zap.Logger) *Handler {
	return &Handler{
		orderService: orderService,
		logger:       logger,
	}
}

// PurchaseRequest строка заказа в теле запроса
type PurchaseRequest struct {
	ProductID int64   `json:"productId"`
	Quantity  float64 `json:"quantity"`
}

// OrderRequest тело POST /api/v1/orders
type OrderRequest struct {
	Reference     string            `json:"reference"`
	Amount        float64           `json:"amount"`
	PaymentMethod string            `json:"paymentMethod"`
	CustomerID    string            `json:"customerId"`
	Products      []PurchaseRequest `json:"products"`
}

// OrderResponse представление заказа
type OrderResponse struct {
	ID            int64   `json:"id"`
	Reference     string  `json:"reference"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	CustomerID    string  `json:"customerId"`
}

// OrderLineResponse представление позиции заказа
type OrderLineResponse struct {
	ID       int64   `json:"id"`
	Quantity float64 `json:"quantity"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Errors map[string]string `json:"errors"`
}

// CreateOrder POST /api/v1/orders -> 200 и id заказа
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	var products []service.PurchaseRequest
	for _, p := range req.Products {
		products = append(products, service.PurchaseRequest{ProductID: p.ProductID, Quantity: p.Quantity})
	}

	id, err := h.orderService.CreateOrder(r.Context(), service.CreateOrderInput{
		Reference:     req.Reference,
		Amount:        req.Amount,
		PaymentMethod: repository.PaymentMethod(req.PaymentMethod),
		CustomerID:    req.CustomerID,
		Products:      products,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, id)
}

// FindAll GET /api/v1/orders
func (h *Handler) FindAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.FindAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	writeJSON(w, http.StatusOK, resp)
}

// FindByID GET /api/v1/orders/{order-id}
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	id, ok := orderIDParam(w, r)
	if !ok {
		return
	}

	order, err := h.orderService.FindByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

// FindOrderLines GET /api/v1/order-lines/order/{order-id}
func (h *Handler) FindOrderLines(w http.ResponseWriter, r *http.Request) {
	id, ok := orderIDParam(w, r)
	if !ok {
		return
	}

	lines, err := h.orderService.FindOrderLines(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := make([]OrderLineResponse, 0, len(lines))
	for _, l := range lines {
		resp = append(resp, OrderLineResponse{ID: l.ID, Quantity: l.Quantity})
	}
	writeJSON(w, http.StatusOK, resp)
}

// writeError переводит ошибки service слоя в HTTP статусы
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve *service.ValidationError
		be *service.BusinessError
	)
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, validationResponse{Errors: ve.Fields})
	case errors.As(err, &be):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: be.Message})
	case errors.Is(err, service.ErrOrderNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		observability.L(r.Context(), h.logger).Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func orderIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "order-id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid order id: " + raw})
		return 0, false
	}
	return id, true
}

func toOrderResponse(o repository.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		Reference:     o.Reference,
		Amount:        o.TotalAmount,
		PaymentMethod: string(o.PaymentMethod),
		CustomerID:    o.CustomerID,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
