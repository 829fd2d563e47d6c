package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	oDomain "github.com/lojadosgeeks/catalog-api/internal/order/domain"
	oRepo "github.com/lojadosgeeks/catalog-api/internal/order/repository"
	svcMocks "github.com/lojadosgeeks/catalog-api/internal/order/service/mocks"
)

func setupOrderRouter(mockSvc *svcMocks.MockOrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.RedirectTrailingSlash = false

	handler := NewOrderHandler(mockSvc)
	handler.RegisterRoutes(router.Group("/api"))
	return router
}

func orderPayload() map[string]interface{} {
	return map[string]interface{}{
		"customer_name":    "Maria Silva",
		"customer_email":   "maria@example.com",
		"customer_phone":   "+55 11 91234-5678",
		"customer_address": "Rua das Flores, 123 - São Paulo",
		"items": []map[string]interface{}{
			{"product_id": "prod-1", "product_name": "Camiseta Star Wars", "price": 29.99, "quantity": 2},
			{"product_id": "prod-2", "product_name": "Mousepad Gamer RGB", "price": 45.50, "quantity": 1},
		},
		"total": 105.48,
	}
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	t.Run("Valid payload returns 200 with the created order", func(t *testing.T) {
		mockSvc := new(svcMocks.MockOrderService)
		router := setupOrderRouter(mockSvc)

		created := &oDomain.Order{
			ID:           "generated-id",
			CustomerName: "Maria Silva",
			Status:       oDomain.StatusPending,
			Total:        105.48,
		}
		mockSvc.On("CreateOrder", mock.Anything, mock.AnythingOfType("domain.OrderCreate")).
			Return(created, nil).Once()

		body, _ := json.Marshal(orderPayload())
		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp oDomain.Order
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "generated-id", resp.ID)
		assert.Equal(t, oDomain.StatusPending, resp.Status)
		assert.Equal(t, 105.48, resp.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Negative total is not rejected at the wire", func(t *testing.T) {
		mockSvc := new(svcMocks.MockOrderService)
		router := setupOrderRouter(mockSvc)

		var bound oDomain.OrderCreate
		mockSvc.On("CreateOrder", mock.Anything, mock.AnythingOfType("domain.OrderCreate")).
			Run(func(args mock.Arguments) {
				bound = args.Get(1).(oDomain.OrderCreate)
			}).
			Return(&oDomain.Order{ID: "generated-id", Total: -12.34}, nil).Once()

		payload := orderPayload()
		payload["total"] = -12.34
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, -12.34, bound.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Missing customer fields return 400 before any persistence", func(t *testing.T) {
		mockSvc := new(svcMocks.MockOrderService)
		router := setupOrderRouter(mockSvc)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader([]byte(`{"total": 10}`)))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("Persistence failure returns 500", func(t *testing.T) {
		mockSvc := new(svcMocks.MockOrderService)
		router := setupOrderRouter(mockSvc)

		mockSvc.On("CreateOrder", mock.Anything, mock.AnythingOfType("domain.OrderCreate")).
			Return(nil, errors.New("mongo unreachable")).Once()

		body, _ := json.Marshal(orderPayload())
		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	mockSvc := new(svcMocks.MockOrderService)
	router := setupOrderRouter(mockSvc)

	mockOrders := []oDomain.Order{
		{ID: "order1", CustomerName: "Maria Silva", Total: 105.48},
		{ID: "order2", CustomerName: "João Souza", Total: 45.99},
	}
	mockSvc.On("ListOrders", mock.Anything).Return(mockOrders, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []oDomain.Order
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "order1", resp[0].ID)
	mockSvc.AssertExpectations(t)
}

func TestOrderHandler_GetOrder(t *testing.T) {
	t.Run("Unknown id returns 404 with the storefront message", func(t *testing.T) {
		mockSvc := new(svcMocks.MockOrderService)
		router := setupOrderRouter(mockSvc)

		mockSvc.On("GetOrderDetails", mock.Anything, "missing-id").
			Return(nil, oRepo.ErrOrderNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/orders/missing-id", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Pedido não encontrado"}`, rec.Body.String())
		mockSvc.AssertExpectations(t)
	})

	t.Run("Persistence failure returns 500", func(t *testing.T) {
		mockSvc := new(svcMocks.MockOrderService)
		router := setupOrderRouter(mockSvc)

		mockSvc.On("GetOrderDetails", mock.Anything, "order1").
			Return(nil, errors.New("mongo unreachable")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/orders/order1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		mockSvc.AssertExpectations(t)
	})
}
