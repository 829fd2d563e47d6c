package service

import (
	"context"

	"github.com/lojadosgeeks/catalog-api/internal/order/domain"
	"github.com/lojadosgeeks/catalog-api/internal/order/repository"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req domain.OrderCreate) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrderDetails(ctx context.Context, orderID string) (*domain.Order, error)
}

type orderServiceImpl struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderServiceImpl{repo: repo}
}

// CreateOrder stores the order exactly as submitted: items keep the request
// order, total is taken as given, and product ids are not checked against
// the catalog. Stock is never decremented.
func (s *orderServiceImpl) CreateOrder(ctx context.Context, req domain.OrderCreate) (*domain.Order, error) {
	order := domain.NewOrder(req)
	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *orderServiceImpl) GetOrderDetails(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.repo.GetOrderByID(ctx, orderID)
}
