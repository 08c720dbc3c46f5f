package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// AccountStatus is the lifecycle state of an account. A withdrawn account
// never becomes active again.
type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountWithdrawn AccountStatus = "WITHDRAWN"
)

// Account is a platform identity. Authentication material lives in the auth
// service; this record owns the profile and is the key for the cart, wishlist
// and mileage resources torn down at withdrawal.
type Account struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Email     string        `bson:"email"`
	Status    AccountStatus `bson:"status"`
	CreatedAt time.Time     `bson:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"`
}
