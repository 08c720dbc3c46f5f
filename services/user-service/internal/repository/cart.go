package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/depang/shopping-mall-api/services/user-service/internal/model"
)

// CartRepository defines the cart operations used by the account lifecycle.
// Cart contents are managed by the cart subsystem; withdrawal only needs the
// delete path.
type CartRepository interface {
	GetCartByAccountID(ctx context.Context, accountID string) (*model.Cart, error)
	DeleteCartByAccountID(ctx context.Context, accountID string) error
}

const cartCollection = "carts"

type cartMongoRepository struct {
	db *mongo.Database
}

// NewCartMongoRepository creates a MongoDB repository for carts.
func NewCartMongoRepository(db *mongo.Database) CartRepository {
	return &cartMongoRepository{db: db}
}

func (r *cartMongoRepository) GetCartByAccountID(ctx context.Context, accountID string) (*model.Cart, error) {
	result := r.db.Collection(cartCollection).FindOne(ctx, bson.M{"account_id": accountID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var cart model.Cart
	if err := result.Decode(&cart); err != nil {
		return nil, err
	}

	return &cart, nil
}

func (r *cartMongoRepository) DeleteCartByAccountID(ctx context.Context, accountID string) error {
	_, err := r.db.Collection(cartCollection).DeleteOne(ctx, bson.M{"account_id": accountID})
	return err
}
