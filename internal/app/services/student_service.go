package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/mayank/campustrack/internal/app/models"
	"github.com/mayank/campustrack/internal/app/models/dto"
	"github.com/mayank/campustrack/internal/pkg/apperrors"
	"github.com/mayank/campustrack/internal/pkg/logger"
)

// StudentService coordinates student records with the seat ledger:
// enrollment reserves a seat before the record exists, withdrawal
// releases the seat after the record is gone.
type StudentService struct {
	students StudentStore
	batches  BatchStore
}

// NewStudentService creates a new student service
func NewStudentService(students StudentStore, batches BatchStore) *StudentService {
	return &StudentService{
		students: students,
		batches:  batches,
	}
}

// Enroll reserves a seat in the student's batch branch and then creates
// the student record. The reservation is the capacity gate: when the
// branch is full no record is written. If the insert loses to a
// duplicate roll number, the reserved seat is released again.
func (s *StudentService) Enroll(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	if err := s.batches.ReserveSeat(ctx, req.Batch, req.Department); err != nil {
		return nil, err
	}

	student := &models.Student{
		Name:            req.Name,
		RollNumber:      req.RollNumber,
		MobileNumber:    req.MobileNumber,
		Department:      req.Department,
		Batch:           req.Batch,
		CurrentSemester: req.CurrentSemester,
		Role:            "student",
	}

	if err := s.students.Create(ctx, student); err != nil {
		if errors.Is(err, apperrors.ErrRollNumberAlreadyExists) {
			if relErr := s.batches.ReleaseSeat(ctx, req.Batch, req.Department); relErr != nil {
				logger.Error().Err(relErr).
					Str("rollNumber", req.RollNumber).
					Int("batch", req.Batch).
					Msg("Failed to release seat after duplicate roll number")
			}
		}
		return nil, err
	}

	return student, nil
}

// Withdraw deletes the student record and releases the seat it held.
func (s *StudentService) Withdraw(ctx context.Context, rollNumber string) (*models.Student, error) {
	deleted, err := s.students.DeleteByRollNumber(ctx, rollNumber)
	if err != nil {
		return nil, err
	}

	if err := s.batches.ReleaseSeat(ctx, deleted.Batch, deleted.Department); err != nil {
		logger.Error().Err(err).
			Str("rollNumber", rollNumber).
			Int("batch", deleted.Batch).
			Msg("Failed to release seat for withdrawn student")
		return nil, err
	}

	return deleted, nil
}

// GetStudent returns one student by roll number.
func (s *StudentService) GetStudent(ctx context.Context, rollNumber string) (*models.Student, error) {
	return s.students.GetByRollNumber(ctx, rollNumber)
}

// StudentFilter narrows student listings. Nil fields match everything.
type StudentFilter struct {
	Department *models.Department
	Batch      *int
}

// ListStudents returns the students matching the filter.
func (s *StudentService) ListStudents(ctx context.Context, filter StudentFilter) ([]models.Student, error) {
	query := bson.M{}
	if filter.Department != nil {
		query["department"] = *filter.Department
	}
	if filter.Batch != nil {
		query["batch"] = *filter.Batch
	}

	return s.students.Find(ctx, query)
}

// UpdateStudent patches mutable fields of a student. Department and
// batch are immutable here: moving a student between seat pools is a
// withdraw plus a fresh enrollment.
func (s *StudentService) UpdateStudent(ctx context.Context, rollNumber string, req dto.UpdateStudentRequest) (*models.Student, error) {
	set := bson.M{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.MobileNumber != 0 {
		set["mobileNumber"] = req.MobileNumber
	}
	if req.CurrentSemester != 0 {
		set["currentSemester"] = req.CurrentSemester
	}

	if len(set) == 0 {
		return s.students.GetByRollNumber(ctx, rollNumber)
	}

	return s.students.Update(ctx, rollNumber, set)
}

// Analytics returns the per-batch enrollment breakdown.
func (s *StudentService) Analytics(ctx context.Context) ([]dto.StudentBatchAnalytics, error) {
	return s.students.AnalyticsByBatch(ctx)
}
