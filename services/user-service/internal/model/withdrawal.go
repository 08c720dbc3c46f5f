package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// WithdrawalReason is the user-selected category for closing the account.
type WithdrawalReason string

const (
	ReasonNotUsed       WithdrawalReason = "NOT_USED"
	ReasonInconvenience WithdrawalReason = "INCONVENIENCE"
	ReasonPrivacy       WithdrawalReason = "PRIVACY"
	ReasonOther         WithdrawalReason = "OTHER"
)

// Withdrawal is the write-once audit record produced when an account is
// closed. It is never mutated or read back by the services.
type Withdrawal struct {
	ID             bson.ObjectID    `bson:"_id,omitempty"`
	AccountID      string           `bson:"account_id"`
	Reason         WithdrawalReason `bson:"reason"`
	Message        string           `bson:"message"`
	WithdrawalDate time.Time        `bson:"withdrawal_date"`
	CreatedAt      time.Time        `bson:"created_at"`
}
