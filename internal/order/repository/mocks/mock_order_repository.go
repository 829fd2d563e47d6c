package mocks

import (
	"context"

	oDomain "github.com/lojadosgeeks/catalog-api/internal/order/domain"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, order *oDomain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) ListOrders(ctx context.Context) ([]oDomain.Order, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]oDomain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetOrderByID(ctx context.Context, id string) (*oDomain.Order, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*oDomain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}
