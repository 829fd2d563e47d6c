package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lojadosgeeks/catalog-api/internal/platform/logger"
	"github.com/lojadosgeeks/catalog-api/internal/product/domain"
)

var ErrProductNotFound = errors.New("product not found")

// listLimit caps every list query; no pagination beyond this.
const listLimit = 1000

// seedProbeLimit bounds the existence check before seeding.
const seedProbeLimit = 10

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *domain.Product) error
	CreateProducts(ctx context.Context, products []domain.Product) error
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	HasProducts(ctx context.Context) (bool, error)
}

type mongoProductRepository struct {
	coll *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) ProductRepository {
	return &mongoProductRepository{coll: db.Collection("products")}
}

func (r *mongoProductRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		logger.Error("CreateProduct: insert failed", err)
		return err
	}
	return nil
}

// CreateProducts inserts the whole batch in a single call.
func (r *mongoProductRepository) CreateProducts(ctx context.Context, products []domain.Product) error {
	docs := make([]interface{}, len(products))
	for i := range products {
		docs[i] = products[i]
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		logger.Error("CreateProducts: bulk insert failed", err)
		return err
	}
	return nil
}

func (r *mongoProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return r.findProducts(ctx, bson.M{})
}

// ListProductsByCategory matches the category exactly, case sensitive.
func (r *mongoProductRepository) ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return r.findProducts(ctx, bson.M{"category": category})
}

func (r *mongoProductRepository) findProducts(ctx context.Context, filter bson.M) ([]domain.Product, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetLimit(listLimit))
	if err != nil {
		logger.Error("findProducts: query failed", err)
		return nil, err
	}

	products := []domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		logger.Error("findProducts: cursor decode failed", err)
		return nil, err
	}
	return products, nil
}

func (r *mongoProductRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		logger.Error("GetProductByID: query failed", err)
		return nil, err
	}
	return &p, nil
}

// HasProducts reports whether any product exists, counting at most
// seedProbeLimit documents.
func (r *mongoProductRepository) HasProducts(ctx context.Context) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{}, options.Count().SetLimit(seedProbeLimit))
	if err != nil {
		logger.Error("HasProducts: count failed", err)
		return false, err
	}
	return count > 0, nil
}
