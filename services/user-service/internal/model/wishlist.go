package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Wishlist references the account's wishlist. Like the cart, it is owned by
// another subsystem and only torn down here at withdrawal.
type Wishlist struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	AccountID string        `bson:"account_id"`
	ItemIDs   []string      `bson:"item_ids"`
	CreatedAt time.Time     `bson:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"`
}
