package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/mayank/campustrack/internal/app/models"
	"github.com/mayank/campustrack/internal/pkg/apperrors"
	"github.com/mayank/campustrack/internal/pkg/auth"
)

// Context keys set by the auth middleware.
const (
	ContextMobileNumber = "mobileNumber"
	ContextRole         = "role"
)

// JWTAuth validates the bearer token and stores the caller's identity
// on the request context.
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		claims, err := jwtService.ValidateAndExtractClaims(token)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		c.Set(ContextMobileNumber, claims.MobileNumber)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RoleRequired rejects callers whose role is not in the allowed set.
// It must run after JWTAuth.
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.Role(c.GetString(ContextRole))
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		HandleAPIError(c, apperrors.ErrPermissionDenied)
	}
}
