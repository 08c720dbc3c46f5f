package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Profile holds the per-account personal details. Exactly one profile exists
// per account; it is created with the account and deleted with it. Contact
// fields start empty until the user supplies them.
type Profile struct {
	ID             bson.ObjectID `bson:"_id,omitempty"`
	AccountID      string        `bson:"account_id"`
	EmployeeNumber int64         `bson:"employee_number"`
	Name           string        `bson:"name"`
	JoinDate       time.Time     `bson:"join_date"`
	PhoneNumber    string        `bson:"phone_number"`
	ZipCode        string        `bson:"zip_code"`
	Address        string        `bson:"address"`
	DetailAddress  string        `bson:"detail_address"`
	CreatedAt      time.Time     `bson:"created_at"`
	UpdatedAt      time.Time     `bson:"updated_at"`
}
