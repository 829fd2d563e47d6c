package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lojadosgeeks/catalog-api/internal/platform/logger"
	"github.com/lojadosgeeks/catalog-api/internal/product/domain"
	"github.com/lojadosgeeks/catalog-api/internal/product/repository"
	"github.com/lojadosgeeks/catalog-api/internal/product/service"
)

// User-facing message kept as the storefront expects it.
const msgProductNotFound = "Produto não encontrado"

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(ps service.ProductService) *ProductHandler {
	return &ProductHandler{productService: ps}
}

func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	productRoutes := router.Group("/products")
	{
		productRoutes.POST("", h.CreateProduct)
		productRoutes.GET("", h.ListProducts)
		productRoutes.GET("/", h.ListProducts)
		productRoutes.GET("/category/:category", h.ListProductsByCategory)
		productRoutes.GET("/:id", h.GetProduct)
	}
	router.POST("/init-data", h.InitSampleData)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req domain.ProductCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("CreateProduct: bad request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		logger.Error("CreateProduct: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		logger.Error("ListProducts: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) ListProductsByCategory(c *gin.Context) {
	category := c.Param("category")
	products, err := h.productService.ListProductsByCategory(c.Request.Context(), category)
	if err != nil {
		logger.Error("ListProductsByCategory: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID := c.Param("id")
	product, err := h.productService.GetProductDetails(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": msgProductNotFound})
			return
		}
		logger.Error("GetProduct: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) InitSampleData(c *gin.Context) {
	result, err := h.productService.SeedSampleData(c.Request.Context())
	if err != nil {
		logger.Error("InitSampleData: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize sample data"})
		return
	}
	c.JSON(http.StatusOK, result)
}
