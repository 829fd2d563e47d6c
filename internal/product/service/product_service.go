package service

import (
	"context"
	"sync"

	"github.com/lojadosgeeks/catalog-api/internal/product/domain"
	"github.com/lojadosgeeks/catalog-api/internal/product/repository"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req domain.ProductCreate) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	GetProductDetails(ctx context.Context, productID string) (*domain.Product, error)
	SeedSampleData(ctx context.Context) (*domain.SeedResult, error)
}

type productServiceImpl struct {
	repo   repository.ProductRepository
	seedMu sync.Mutex
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productServiceImpl{repo: repo}
}

// CreateProduct persists the canonical entity and returns it unchanged.
// A persistence failure surfaces to the caller; there is no retry.
func (s *productServiceImpl) CreateProduct(ctx context.Context, req domain.ProductCreate) (*domain.Product, error) {
	product := domain.NewProduct(req)
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productServiceImpl) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *productServiceImpl) ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.repo.ListProductsByCategory(ctx, category)
}

func (s *productServiceImpl) GetProductDetails(ctx context.Context, productID string) (*domain.Product, error) {
	return s.repo.GetProductByID(ctx, productID)
}
