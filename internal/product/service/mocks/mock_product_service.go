package mocks

import (
	"context"

	pDomain "github.com/lojadosgeeks/catalog-api/internal/product/domain"

	"github.com/stretchr/testify/mock"
)

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) CreateProduct(ctx context.Context, req pDomain.ProductCreate) (*pDomain.Product, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*pDomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) ListProducts(ctx context.Context) ([]pDomain.Product, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]pDomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) ListProductsByCategory(ctx context.Context, category string) ([]pDomain.Product, error) {
	args := m.Called(ctx, category)
	if res := args.Get(0); res != nil {
		return res.([]pDomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) GetProductDetails(ctx context.Context, productID string) (*pDomain.Product, error) {
	args := m.Called(ctx, productID)
	if res := args.Get(0); res != nil {
		return res.(*pDomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) SeedSampleData(ctx context.Context) (*pDomain.SeedResult, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*pDomain.SeedResult), args.Error(1)
	}
	return nil, args.Error(1)
}
