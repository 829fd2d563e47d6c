package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lojadosgeeks/catalog-api/internal/order/domain"
	"github.com/lojadosgeeks/catalog-api/internal/order/repository"
	"github.com/lojadosgeeks/catalog-api/internal/order/service"
	"github.com/lojadosgeeks/catalog-api/internal/platform/logger"
)

const msgOrderNotFound = "Pedido não encontrado"

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(os service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: os}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orderRoutes := router.Group("/orders")
	{
		orderRoutes.POST("", h.CreateOrder)
		orderRoutes.GET("", h.ListOrders)
		orderRoutes.GET("/", h.ListOrders)
		orderRoutes.GET("/:id", h.GetOrder)
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req domain.OrderCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("CreateOrder: bad request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		logger.Error("CreateOrder: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		logger.Error("ListOrders: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID := c.Param("id")
	order, err := h.orderService.GetOrderDetails(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": msgOrderNotFound})
			return
		}
		logger.Error("GetOrder: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
		return
	}
	c.JSON(http.StatusOK, order)
}
