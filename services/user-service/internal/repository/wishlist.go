package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/depang/shopping-mall-api/services/user-service/internal/model"
)

// WishlistRepository defines the wishlist operations used by the account
// lifecycle.
type WishlistRepository interface {
	GetWishlistByAccountID(ctx context.Context, accountID string) (*model.Wishlist, error)
	DeleteWishlistByAccountID(ctx context.Context, accountID string) error
}

const wishlistCollection = "wishlists"

type wishlistMongoRepository struct {
	db *mongo.Database
}

// NewWishlistMongoRepository creates a MongoDB repository for wishlists.
func NewWishlistMongoRepository(db *mongo.Database) WishlistRepository {
	return &wishlistMongoRepository{db: db}
}

func (r *wishlistMongoRepository) GetWishlistByAccountID(
	ctx context.Context,
	accountID string,
) (*model.Wishlist, error) {
	result := r.db.Collection(wishlistCollection).FindOne(ctx, bson.M{"account_id": accountID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var wishlist model.Wishlist
	if err := result.Decode(&wishlist); err != nil {
		return nil, err
	}

	return &wishlist, nil
}

func (r *wishlistMongoRepository) DeleteWishlistByAccountID(ctx context.Context, accountID string) error {
	_, err := r.db.Collection(wishlistCollection).DeleteOne(ctx, bson.M{"account_id": accountID})
	return err
}
