// Package services implements the business rules on top of the
// repositories. Services depend on the narrow store interfaces below, so
// tests exercise them against in-memory fakes.
package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/mayank/campustrack/internal/app/models"
	"github.com/mayank/campustrack/internal/app/models/dto"
	"github.com/mayank/campustrack/internal/app/repositories"
	"github.com/mayank/campustrack/internal/pkg/auth"
)

// BatchStore is the seat ledger surface the services consume.
type BatchStore interface {
	Create(ctx context.Context, batch *models.Batch) error
	GetAll(ctx context.Context) ([]models.Batch, error)
	GetByYear(ctx context.Context, year int) (*models.Batch, error)
	DeleteByYear(ctx context.Context, year int) (*models.Batch, error)
	AddBranch(ctx context.Context, year int, branch models.Branch) (*models.Batch, error)
	UpdateBranch(ctx context.Context, year int, name models.Department, patch dto.UpdateBranchRequest) (*models.Batch, error)
	HasCapacity(ctx context.Context, year int, name models.Department) (bool, error)
	ReserveSeat(ctx context.Context, year int, name models.Department) error
	ReleaseSeat(ctx context.Context, year int, name models.Department) error
	VacantSeatsByYear(ctx context.Context, year int) (*dto.VacantSeatsReport, error)
}

// StudentStore is the student persistence surface the services consume.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error)
	Find(ctx context.Context, filter bson.M) ([]models.Student, error)
	FindByRollNumbers(ctx context.Context, rollNumbers []string) ([]models.Student, error)
	Update(ctx context.Context, rollNumber string, set bson.M) (*models.Student, error)
	DeleteByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error)
	AnalyticsByBatch(ctx context.Context) ([]dto.StudentBatchAnalytics, error)
}

// AttendanceStore is the attendance persistence surface the services consume.
type AttendanceStore interface {
	Create(ctx context.Context, record *models.Attendance) error
	Amend(ctx context.Context, rollNumber string, date time.Time, status models.AttendanceStatus) (*models.Attendance, error)
	Remove(ctx context.Context, rollNumber string) error
	AbsenteesOn(ctx context.Context, day time.Time) ([]string, error)
	LowAttendance(ctx context.Context, start, end time.Time) ([]dto.LowAttendanceRow, error)
}

// UserStore is the account persistence surface the services consume.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByMobileNumber(ctx context.Context, mobileNumber int64) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, mobileNumber int64, set bson.M) (*models.User, error)
	Delete(ctx context.Context, mobileNumber int64) error
	CountByRole(ctx context.Context, role models.Role) (int64, error)
}

// Services holds all service instances.
type Services struct {
	Batch      *BatchService
	Student    *StudentService
	Attendance *AttendanceService
	User       *UserService
	Auth       *AuthService
}

// NewServices wires all services over the repositories.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		Batch:      NewBatchService(repos.Batch),
		Student:    NewStudentService(repos.Student, repos.Batch),
		Attendance: NewAttendanceService(repos.Attendance, repos.Student),
		User:       NewUserService(repos.User),
		Auth:       NewAuthService(repos.User, jwtService),
	}
}
