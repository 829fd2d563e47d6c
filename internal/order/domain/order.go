package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// OrderItem is a denormalized snapshot of a product line at order time.
// There is no live foreign key to Product; the order keeps its own copy so
// later product changes never alter historical orders.
type OrderItem struct {
	ProductID   string  `json:"product_id" bson:"product_id" binding:"required"`
	ProductName string  `json:"product_name" bson:"product_name" binding:"required"`
	Price       float64 `json:"price" bson:"price"`
	Quantity    int     `json:"quantity" bson:"quantity"`
}

type Order struct {
	ID              string      `json:"id" bson:"id"`
	CustomerName    string      `json:"customer_name" bson:"customer_name"`
	CustomerEmail   string      `json:"customer_email" bson:"customer_email"`
	CustomerPhone   string      `json:"customer_phone" bson:"customer_phone"`
	CustomerAddress string      `json:"customer_address" bson:"customer_address"`
	Items           []OrderItem `json:"items" bson:"items"`
	Total           float64     `json:"total" bson:"total"`
	Status          OrderStatus `json:"status" bson:"status"`
	CreatedAt       time.Time   `json:"created_at" bson:"created_at"`
}

// OrderCreate accepts an empty items slice, matching the original backend.
// Total and the item amounts are stored as given, never recomputed or
// range-checked.
type OrderCreate struct {
	CustomerName    string      `json:"customer_name" binding:"required"`
	CustomerEmail   string      `json:"customer_email" binding:"required"`
	CustomerPhone   string      `json:"customer_phone" binding:"required"`
	CustomerAddress string      `json:"customer_address" binding:"required"`
	Items           []OrderItem `json:"items" binding:"dive"`
	Total           float64     `json:"total"`
}

// NewOrder builds the canonical entity, assigning id, creation timestamp
// and the pending status. The items sequence keeps the request order.
func NewOrder(req OrderCreate) *Order {
	items := make([]OrderItem, len(req.Items))
	copy(items, req.Items)

	return &Order{
		ID:              uuid.NewString(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Items:           items,
		Total:           req.Total,
		Status:          StatusPending,
		CreatedAt:       time.Now().UTC(),
	}
}
