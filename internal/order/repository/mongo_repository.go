package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lojadosgeeks/catalog-api/internal/order/domain"
	"github.com/lojadosgeeks/catalog-api/internal/platform/logger"
)

var ErrOrderNotFound = errors.New("order not found")

const listLimit = 1000

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrderByID(ctx context.Context, id string) (*domain.Order, error)
}

type mongoOrderRepository struct {
	coll *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) OrderRepository {
	return &mongoOrderRepository{coll: db.Collection("orders")}
}

func (r *mongoOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		logger.Error("CreateOrder: insert failed", err)
		return err
	}
	return nil
}

func (r *mongoOrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetLimit(listLimit))
	if err != nil {
		logger.Error("ListOrders: query failed", err)
		return nil, err
	}

	orders := []domain.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		logger.Error("ListOrders: cursor decode failed", err)
		return nil, err
	}
	return orders, nil
}

func (r *mongoOrderRepository) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		logger.Error("GetOrderByID: query failed", err)
		return nil, err
	}
	return &o, nil
}
