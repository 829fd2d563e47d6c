package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product documents are addressed by the API-level "id" field, not Mongo's
// native "_id". Categories are free-text tags ("geeks", "gel-dor",
// "diversos"), not a closed enum.
type Product struct {
	ID            string    `json:"id" bson:"id"`
	Name          string    `json:"name" bson:"name"`
	Description   string    `json:"description" bson:"description"`
	Price         float64   `json:"price" bson:"price"`
	Category      string    `json:"category" bson:"category"`
	ImageURL      string    `json:"image_url" bson:"image_url"`
	InStock       bool      `json:"in_stock" bson:"in_stock"`
	StockQuantity int       `json:"stock_quantity" bson:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

type ProductCreate struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	Price         float64 `json:"price" binding:"gte=0"`
	Category      string  `json:"category" binding:"required"`
	ImageURL      string  `json:"image_url" binding:"required"`
	InStock       *bool   `json:"in_stock"`
	StockQuantity int     `json:"stock_quantity" binding:"gte=0"`
}

type SeedResult struct {
	Message string `json:"message"`
}

// NewProduct builds the canonical entity from a create payload, assigning
// the generated id and creation timestamp. in_stock defaults to true when
// the payload omits it.
func NewProduct(req ProductCreate) *Product {
	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}
	return &Product{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		ImageURL:      req.ImageURL,
		InStock:       inStock,
		StockQuantity: req.StockQuantity,
		CreatedAt:     time.Now().UTC(),
	}
}
