package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mayank/campustrack/internal/app/models"
	"github.com/mayank/campustrack/internal/db"
	"github.com/mayank/campustrack/internal/pkg/apperrors"
)

// UserRepository handles staff and admin account persistence. Mobile
// numbers identify accounts; the unique index backs that.
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new user repository
func NewUserRepository(database *mongo.Database) *UserRepository {
	return &UserRepository{
		coll: database.Collection(db.UserCollection),
	}
}

// Create inserts a new user account.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	_, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrMobileNumberTaken
		}
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// GetByMobileNumber retrieves a user by mobile number.
func (r *UserRepository) GetByMobileNumber(ctx context.Context, mobileNumber int64) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"mobileNumber": mobileNumber}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// GetAll retrieves every user account.
func (r *UserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("error decoding users: %w", err)
	}

	return users, nil
}

// Update applies a partial $set to the user and returns the updated
// document.
func (r *UserRepository) Update(ctx context.Context, mobileNumber int64, set bson.M) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.User
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"mobileNumber": mobileNumber}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	return &updated, nil
}

// Delete removes a user account.
func (r *UserRepository) Delete(ctx context.Context, mobileNumber int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"mobileNumber": mobileNumber})
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// CountByRole counts the accounts holding the given role.
func (r *UserRepository) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"role": role})
	if err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}
