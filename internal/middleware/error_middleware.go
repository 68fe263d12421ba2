package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mayank/campustrack/internal/app/models/dto"
	"github.com/mayank/campustrack/internal/pkg/apperrors"
	"github.com/mayank/campustrack/internal/pkg/auth"
	"github.com/mayank/campustrack/internal/pkg/logger"
)

// HandleAPIError maps an application error onto the HTTP status and
// error envelope and writes the response. Controllers call it for every
// error path so the wire contract stays uniform.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := classifyError(err)

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Internal server error")
	} else {
		logger.Debug().Err(err).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Msg("Request failed")
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// classifyError resolves an error into a status code and error detail.
func classifyError(err error) (int, *dto.ErrorDetail) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "request validation failed")
		if len(validationErrs) > 0 {
			detail.WithField(validationErrs[0].Field())
		}
		return http.StatusBadRequest, detail
	}

	switch {
	case errors.Is(err, apperrors.ErrSeatNotAvailable):
		return http.StatusConflict,
			dto.NewErrorDetail(dto.ErrorCodeCapacityExceeded, err.Error())

	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrBatchNotFound,
		apperrors.ErrBranchNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrAttendanceNotFound,
		apperrors.ErrNoAbsenteesFound,
		apperrors.ErrAnalyticsEmpty,
		apperrors.ErrUserNotFound):
		return http.StatusNotFound,
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())

	case apperrors.Is(err, apperrors.ErrResourceAlreadyExists,
		apperrors.ErrConflict,
		apperrors.ErrBatchAlreadyExists,
		apperrors.ErrBranchAlreadyExists,
		apperrors.ErrRollNumberAlreadyExists,
		apperrors.ErrAttendanceAlreadyRecorded,
		apperrors.ErrMobileNumberTaken,
		apperrors.ErrAdminExists):
		return http.StatusConflict,
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, err.Error())

	case apperrors.Is(err, apperrors.ErrTokenExpired, auth.ErrExpiredToken):
		return http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, err.Error())

	case apperrors.Is(err, apperrors.ErrTokenInvalid,
		apperrors.ErrInvalidFormat,
		auth.ErrInvalidToken,
		auth.ErrInvalidFormat):
		return http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, err.Error())

	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden,
			dto.NewErrorDetail(dto.ErrorCodeForbidden, err.Error())

	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
	}

	return http.StatusInternalServerError,
		dto.NewErrorDetail(dto.ErrorCodeInternalServer, "an unexpected error occurred")
}
