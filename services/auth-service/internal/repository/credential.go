package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/depang/shopping-mall-api/services/auth-service/internal/model"
)

// CredentialRepository defines the interface for credential-related database
// operations.
type CredentialRepository interface {
	CreateCredential(ctx context.Context, credential *model.Credential) (*model.Credential, error)
	GetCredentialByEmail(ctx context.Context, email string) (*model.Credential, error)
	UpdatePasswordHash(ctx context.Context, email, passwordHash string) error
}

const credentialCollection = "credentials"

type credentialMongoRepository struct {
	db *mongo.Database
}

// NewCredentialMongoRepository creates a MongoDB repository for credentials.
// The unique email index enforces the at-most-one-credential-per-email
// invariant at the store level.
func NewCredentialMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) CredentialRepository {
	collection := db.Collection(credentialCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create credential indexes")
	}

	return &credentialMongoRepository{db: db}
}

func (r *credentialMongoRepository) CreateCredential(
	ctx context.Context,
	credential *model.Credential,
) (*model.Credential, error) {
	now := time.Now()
	credential.CreatedAt = now
	credential.UpdatedAt = now

	result, err := r.db.Collection(credentialCollection).InsertOne(ctx, credential)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		credential.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return credential, nil
}

func (r *credentialMongoRepository) GetCredentialByEmail(
	ctx context.Context,
	email string,
) (*model.Credential, error) {
	result := r.db.Collection(credentialCollection).FindOne(ctx, bson.M{"email": email})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var credential model.Credential
	if err := result.Decode(&credential); err != nil {
		return nil, err
	}

	return &credential, nil
}

func (r *credentialMongoRepository) UpdatePasswordHash(ctx context.Context, email, passwordHash string) error {
	update := bson.M{
		"$set": bson.M{
			"password_hash": passwordHash,
			"updated_at":    time.Now(),
		},
	}

	result, err := r.db.Collection(credentialCollection).UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}
