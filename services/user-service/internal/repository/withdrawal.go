package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/depang/shopping-mall-api/services/user-service/internal/model"
)

// WithdrawalRepository persists the write-once withdrawal audit records.
type WithdrawalRepository interface {
	CreateWithdrawal(ctx context.Context, withdrawal *model.Withdrawal) (*model.Withdrawal, error)
}

const withdrawalCollection = "withdrawals"

type withdrawalMongoRepository struct {
	db *mongo.Database
}

// NewWithdrawalMongoRepository creates a MongoDB repository for withdrawal
// records.
func NewWithdrawalMongoRepository(db *mongo.Database) WithdrawalRepository {
	return &withdrawalMongoRepository{db: db}
}

func (r *withdrawalMongoRepository) CreateWithdrawal(
	ctx context.Context,
	withdrawal *model.Withdrawal,
) (*model.Withdrawal, error) {
	withdrawal.CreatedAt = time.Now()

	result, err := r.db.Collection(withdrawalCollection).InsertOne(ctx, withdrawal)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		withdrawal.ID = objectID
	}

	return withdrawal, nil
}
