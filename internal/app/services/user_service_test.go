package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayank/campustrack/internal/app/models"
	"github.com/mayank/campustrack/internal/app/models/dto"
	"github.com/mayank/campustrack/internal/pkg/apperrors"
	"github.com/mayank/campustrack/internal/pkg/auth"
)

func TestRegisterHashesPasswordBeforePersisting(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)

	created, err := svc.Register(context.Background(), dto.CreateUserRequest{
		Name:         "Staff One",
		MobileNumber: 9000000001,
		Password:     "plain-password",
		Department:   models.DepartmentCE,
		Role:         models.RoleStaff,
	})
	require.NoError(t, err)

	assert.NotEqual(t, "plain-password", created.Password)
	assert.True(t, auth.CheckPassword(created.Password, "plain-password"))

	stored, err := users.GetByMobileNumber(context.Background(), 9000000001)
	require.NoError(t, err)
	assert.Equal(t, created.Password, stored.Password)
	assert.Equal(t, models.DepartmentCE, stored.Department)
}

func TestRegisterAdminClearsDepartment(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	created, err := svc.Register(context.Background(), dto.CreateUserRequest{
		Name:         "Admin",
		MobileNumber: 9000000002,
		Password:     "admin-password",
		Department:   models.DepartmentCS,
		Role:         models.RoleAdmin,
	})
	require.NoError(t, err)

	assert.Empty(t, created.Department)
}

func TestRegisterSecondAdminRejected(t *testing.T) {
	svc := NewUserService(newFakeUserStore(
		&models.User{MobileNumber: 1, Role: models.RoleAdmin},
	))

	_, err := svc.Register(context.Background(), dto.CreateUserRequest{
		Name:         "Another Admin",
		MobileNumber: 2,
		Password:     "admin-password",
		Role:         models.RoleAdmin,
	})
	assert.ErrorIs(t, err, apperrors.ErrAdminExists)

	// Staff registration is unaffected by the admin cap.
	_, err = svc.Register(context.Background(), dto.CreateUserRequest{
		Name:         "Staff",
		MobileNumber: 3,
		Password:     "staff-password",
		Role:         models.RoleStaff,
	})
	assert.NoError(t, err)
}

func TestRegisterDuplicateMobileNumber(t *testing.T) {
	svc := NewUserService(newFakeUserStore(
		&models.User{MobileNumber: 5, Role: models.RoleStaff},
	))

	_, err := svc.Register(context.Background(), dto.CreateUserRequest{
		Name:         "Dup",
		MobileNumber: 5,
		Password:     "password",
		Role:         models.RoleStaff,
	})
	assert.ErrorIs(t, err, apperrors.ErrMobileNumberTaken)
}

func TestUpdateUserHashesNewPassword(t *testing.T) {
	users := newFakeUserStore(
		&models.User{MobileNumber: 7, Name: "Old", Password: "old-hash", Role: models.RoleStaff},
	)
	svc := NewUserService(users)

	updated, err := svc.UpdateUser(context.Background(), 7, dto.UpdateUserRequest{
		Password: "new-password",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "new-password", updated.Password)
	assert.True(t, auth.CheckPassword(updated.Password, "new-password"))
	assert.Equal(t, "Old", updated.Name)
}

func TestDeleteUser(t *testing.T) {
	svc := NewUserService(newFakeUserStore(
		&models.User{MobileNumber: 9, Role: models.RoleStaff},
	))

	require.NoError(t, svc.DeleteUser(context.Background(), 9))
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), 9), apperrors.ErrUserNotFound)
}
