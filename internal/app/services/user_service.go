package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/mayank/campustrack/internal/app/models"
	"github.com/mayank/campustrack/internal/app/models/dto"
	"github.com/mayank/campustrack/internal/pkg/apperrors"
	"github.com/mayank/campustrack/internal/pkg/auth"
)

// UserService manages API accounts. Pre-persist transforms are applied
// explicitly here before any write: passwords are bcrypt-hashed, and
// admin accounts carry no department. At most one admin account exists.
type UserService struct {
	users UserStore
}

// NewUserService creates a new user service
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Register creates a new account. Registering a second admin is
// rejected; the count check runs against the store so restarts or
// competing instances cannot talk each other into a duplicate.
func (s *UserService) Register(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	if req.Role == models.RoleAdmin {
		count, err := s.users.CountByRole(ctx, models.RoleAdmin)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, apperrors.ErrAdminExists
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		MobileNumber: req.MobileNumber,
		Password:     hash,
		Department:   req.Department,
		Role:         req.Role,
	}
	if user.Role == models.RoleAdmin {
		user.Department = ""
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser returns one account by mobile number.
func (s *UserService) GetUser(ctx context.Context, mobileNumber int64) (*models.User, error) {
	return s.users.GetByMobileNumber(ctx, mobileNumber)
}

// ListUsers returns every account.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.GetAll(ctx)
}

// UpdateUser patches mutable account fields. A new password is hashed
// before it is written.
func (s *UserService) UpdateUser(ctx context.Context, mobileNumber int64, req dto.UpdateUserRequest) (*models.User, error) {
	set := bson.M{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		set["password"] = hash
	}

	if len(set) == 0 {
		return s.users.GetByMobileNumber(ctx, mobileNumber)
	}

	return s.users.Update(ctx, mobileNumber, set)
}

// DeleteUser removes an account.
func (s *UserService) DeleteUser(ctx context.Context, mobileNumber int64) error {
	return s.users.Delete(ctx, mobileNumber)
}
