// Package seed creates the default data the application needs on first
// start.
package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mayank/campustrack/internal/app/models/dto"
	"github.com/mayank/campustrack/internal/app/services"
	"github.com/mayank/campustrack/internal/config"
	"github.com/mayank/campustrack/internal/pkg/apperrors"
)

// CreateDefaultAdmin registers the configured admin account when none
// exists yet. The singleton-admin rule in the user service makes this
// safe to run on every start and from competing instances.
func CreateDefaultAdmin(ctx context.Context, userService *services.UserService, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.MobileNumber == 0 || cfg.Admin.Password == "" {
		lgr.Info().Msg("No default admin configured, skipping seed")
		return nil
	}

	name := cfg.Admin.Name
	if name == "" {
		name = "Administrator"
	}

	_, err := userService.Register(ctx, dto.CreateUserRequest{
		Name:         name,
		MobileNumber: cfg.Admin.MobileNumber,
		Password:     cfg.Admin.Password,
		Role:         "admin",
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminExists) || errors.Is(err, apperrors.ErrMobileNumberTaken) {
			lgr.Debug().Msg("Admin account already present, skipping seed")
			return nil
		}
		return err
	}

	lgr.Info().Int64("mobileNumber", cfg.Admin.MobileNumber).Msg("Default admin account created")
	return nil
}
