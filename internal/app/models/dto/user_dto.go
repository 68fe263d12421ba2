package dto

import "github.com/mayank/campustrack/internal/app/models"

// CreateUserRequest registers a new API account.
type CreateUserRequest struct {
	Name         string            `json:"name" binding:"required,min=2,max=100"`
	MobileNumber int64             `json:"mobileNumber" binding:"required,gt=0"`
	Password     string            `json:"password" binding:"required,min=8"`
	Department   models.Department `json:"department" binding:"omitempty,department"`
	Role         models.Role       `json:"role" binding:"required,oneof=admin staff"`
}

// UpdateUserRequest patches mutable user fields by mobile number.
type UpdateUserRequest struct {
	Name     string `json:"name" binding:"omitempty,min=2,max=100"`
	Password string `json:"password" binding:"omitempty,min=8"`
}

// LoginRequest is the credential payload for token issuance.
type LoginRequest struct {
	MobileNumber int64  `json:"mobileNumber" binding:"required,gt=0"`
	Password     string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn"`
}
