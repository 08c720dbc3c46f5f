package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Cart references the account's shopping cart. Carts are created and filled
// by the cart subsystem; the user service only deletes them at withdrawal.
type Cart struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	AccountID string        `bson:"account_id"`
	ItemIDs   []string      `bson:"item_ids"`
	CreatedAt time.Time     `bson:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"`
}
