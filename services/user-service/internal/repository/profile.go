package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/depang/shopping-mall-api/services/user-service/internal/model"
)

// ProfileRepository defines the interface for profile-related database
// operations.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error)
	GetProfileByAccountID(ctx context.Context, accountID string) (*model.Profile, error)
	GetProfilesByAccountIDs(ctx context.Context, accountIDs []string) ([]*model.Profile, error)
	UpdateContact(ctx context.Context, accountID string, params UpdateContactParams) error
	ListProfiles(ctx context.Context, params FilterProfilesParams) ([]*model.Profile, error)
	DeleteProfileByAccountID(ctx context.Context, accountID string) error
}

// UpdateContactParams carries the contact fields overwritten by an address
// update.
type UpdateContactParams struct {
	PhoneNumber   string
	ZipCode       string
	Address       string
	DetailAddress string
}

// FilterProfilesParams defines the parameters for filtering and paginating
// profiles. At most one of NameKeyword and EmployeeNumber is set.
type FilterProfilesParams struct {
	NameKeyword    *string
	EmployeeNumber *int64
	Limit          uint64
	Offset         uint64
}

const profileCollection = "profiles"

type profileMongoRepository struct {
	db *mongo.Database
}

// NewProfileMongoRepository creates a MongoDB repository for profiles.
func NewProfileMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) ProfileRepository {
	collection := db.Collection(profileCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "account_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "employee_number", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create profile indexes")
	}

	return &profileMongoRepository{db: db}
}

func (r *profileMongoRepository) CreateProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	result, err := r.db.Collection(profileCollection).InsertOne(ctx, profile)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		profile.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return profile, nil
}

func (r *profileMongoRepository) GetProfileByAccountID(
	ctx context.Context,
	accountID string,
) (*model.Profile, error) {
	result := r.db.Collection(profileCollection).FindOne(ctx, bson.M{"account_id": accountID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var profile model.Profile
	if err := result.Decode(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileMongoRepository) GetProfilesByAccountIDs(
	ctx context.Context,
	accountIDs []string,
) ([]*model.Profile, error) {
	cursor, err := r.db.Collection(profileCollection).Find(ctx, bson.M{
		"account_id": bson.M{"$in": accountIDs},
	})
	if err != nil {
		return nil, err
	}

	var profiles []*model.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *profileMongoRepository) UpdateContact(
	ctx context.Context,
	accountID string,
	params UpdateContactParams,
) error {
	update := bson.M{
		"$set": bson.M{
			"phone_number":   params.PhoneNumber,
			"zip_code":       params.ZipCode,
			"address":        params.Address,
			"detail_address": params.DetailAddress,
			"updated_at":     time.Now(),
		},
	}

	result, err := r.db.Collection(profileCollection).UpdateOne(ctx, bson.M{"account_id": accountID}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}

func (r *profileMongoRepository) ListProfiles(
	ctx context.Context,
	params FilterProfilesParams,
) ([]*model.Profile, error) {
	limit := params.Limit
	if limit == 0 {
		limit = 10
	}

	findOptions := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(params.Offset)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	filter := bson.M{}
	if params.NameKeyword != nil {
		filter["name"] = bson.M{"$regex": *params.NameKeyword, "$options": "i"}
	}
	if params.EmployeeNumber != nil {
		filter["employee_number"] = *params.EmployeeNumber
	}

	cursor, err := r.db.Collection(profileCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []*model.Profile
	for cursor.Next(ctx) {
		var profile model.Profile
		if err := cursor.Decode(&profile); err != nil {
			return nil, err
		}
		profiles = append(profiles, &profile)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *profileMongoRepository) DeleteProfileByAccountID(ctx context.Context, accountID string) error {
	_, err := r.db.Collection(profileCollection).DeleteOne(ctx, bson.M{"account_id": accountID})
	return err
}
