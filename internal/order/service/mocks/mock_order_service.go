package mocks

import (
	"context"

	oDomain "github.com/lojadosgeeks/catalog-api/internal/order/domain"

	"github.com/stretchr/testify/mock"
)

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, req oDomain.OrderCreate) (*oDomain.Order, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*oDomain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context) ([]oDomain.Order, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]oDomain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderService) GetOrderDetails(ctx context.Context, orderID string) (*oDomain.Order, error) {
	args := m.Called(ctx, orderID)
	if res := args.Get(0); res != nil {
		return res.(*oDomain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}
