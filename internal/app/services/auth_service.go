package services

import (
	"context"
	"errors"

	"github.com/mayank/campustrack/internal/app/models/dto"
	"github.com/mayank/campustrack/internal/pkg/apperrors"
	"github.com/mayank/campustrack/internal/pkg/auth"
)

// AuthService issues access tokens against stored credentials.
type AuthService struct {
	users UserStore
	jwt   *auth.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(users UserStore, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		users: users,
		jwt:   jwtService,
	}
}

// Login verifies the mobile number and password and returns a signed
// access token. Unknown accounts and wrong passwords are reported
// identically as invalid credentials.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.GetByMobileNumber(ctx, req.MobileNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwt.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
