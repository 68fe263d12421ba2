package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayank/campustrack/internal/app/models"
	"github.com/mayank/campustrack/internal/app/models/dto"
	"github.com/mayank/campustrack/internal/pkg/apperrors"
)

func twoSeatBatch() *models.Batch {
	return &models.Batch{
		Year: 2024,
		Branches: []models.Branch{
			{Name: models.DepartmentCE, TotalStudentsIntake: 2, CurrentSeatCount: 0},
			{Name: models.DepartmentME, TotalStudentsIntake: 30, CurrentSeatCount: 0},
		},
	}
}

func enrollRequest(rollNumber string) dto.CreateStudentRequest {
	return dto.CreateStudentRequest{
		Name:            "Student " + rollNumber,
		RollNumber:      rollNumber,
		MobileNumber:    9000000001,
		Department:      models.DepartmentCE,
		Batch:           2024,
		CurrentSemester: 1,
	}
}

func TestEnrollReservesSeatAndCreatesStudent(t *testing.T) {
	batches := newFakeBatchStore(twoSeatBatch())
	students := newFakeStudentStore()
	svc := NewStudentService(students, batches)

	student, err := svc.Enroll(context.Background(), enrollRequest("CE-001"))
	require.NoError(t, err)

	assert.Equal(t, "CE-001", student.RollNumber)
	assert.Equal(t, "student", student.Role)

	batch, _ := batches.GetByYear(context.Background(), 2024)
	assert.Equal(t, 1, batch.Branch(models.DepartmentCE).CurrentSeatCount)
	assert.Equal(t, 1, batch.TotalEnrolledStudents)
}

func TestEnrollFullBranchCreatesNothing(t *testing.T) {
	// Two CE seats: A and B succeed, C must fail with no record written.
	batches := newFakeBatchStore(twoSeatBatch())
	students := newFakeStudentStore()
	svc := NewStudentService(students, batches)

	_, err := svc.Enroll(context.Background(), enrollRequest("CE-A"))
	require.NoError(t, err)
	_, err = svc.Enroll(context.Background(), enrollRequest("CE-B"))
	require.NoError(t, err)

	_, err = svc.Enroll(context.Background(), enrollRequest("CE-C"))
	assert.ErrorIs(t, err, apperrors.ErrSeatNotAvailable)

	_, err = students.GetByRollNumber(context.Background(), "CE-C")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	batch, _ := batches.GetByYear(context.Background(), 2024)
	assert.Equal(t, 2, batch.Branch(models.DepartmentCE).CurrentSeatCount)
	assert.Equal(t, 2, batch.TotalEnrolledStudents)
}

func TestEnrollUnknownBatchAndBranch(t *testing.T) {
	batches := newFakeBatchStore(twoSeatBatch())
	svc := NewStudentService(newFakeStudentStore(), batches)

	req := enrollRequest("X-1")
	req.Batch = 1999
	_, err := svc.Enroll(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrBatchNotFound)

	req = enrollRequest("X-2")
	req.Department = models.DepartmentEE
	_, err = svc.Enroll(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrBranchNotFound)
}

func TestEnrollDuplicateRollNumberReleasesSeat(t *testing.T) {
	batches := newFakeBatchStore(twoSeatBatch())
	students := newFakeStudentStore()
	svc := NewStudentService(students, batches)

	_, err := svc.Enroll(context.Background(), enrollRequest("CE-001"))
	require.NoError(t, err)

	_, err = svc.Enroll(context.Background(), enrollRequest("CE-001"))
	assert.ErrorIs(t, err, apperrors.ErrRollNumberAlreadyExists)

	// The compensating release put the second seat back.
	batch, _ := batches.GetByYear(context.Background(), 2024)
	assert.Equal(t, 1, batch.Branch(models.DepartmentCE).CurrentSeatCount)
	assert.Equal(t, 1, batch.TotalEnrolledStudents)
	assert.Equal(t, 1, batches.releaseCalls)
}

func TestWithdrawReleasesSeat(t *testing.T) {
	batches := newFakeBatchStore(twoSeatBatch())
	students := newFakeStudentStore()
	svc := NewStudentService(students, batches)

	_, err := svc.Enroll(context.Background(), enrollRequest("CE-001"))
	require.NoError(t, err)

	deleted, err := svc.Withdraw(context.Background(), "CE-001")
	require.NoError(t, err)
	assert.Equal(t, "CE-001", deleted.RollNumber)

	batch, _ := batches.GetByYear(context.Background(), 2024)
	assert.Equal(t, 0, batch.Branch(models.DepartmentCE).CurrentSeatCount)
	assert.Equal(t, 0, batch.TotalEnrolledStudents)

	// Enrolling again reuses the freed seat.
	_, err = svc.Enroll(context.Background(), enrollRequest("CE-002"))
	assert.NoError(t, err)
}

func TestWithdrawUnknownStudent(t *testing.T) {
	batches := newFakeBatchStore(twoSeatBatch())
	svc := NewStudentService(newFakeStudentStore(), batches)

	_, err := svc.Withdraw(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.Zero(t, batches.releaseCalls)
}

func TestListStudentsFilters(t *testing.T) {
	students := newFakeStudentStore(
		&models.Student{RollNumber: "CE-1", Department: models.DepartmentCE, Batch: 2024},
		&models.Student{RollNumber: "ME-1", Department: models.DepartmentME, Batch: 2024},
		&models.Student{RollNumber: "CE-2", Department: models.DepartmentCE, Batch: 2023},
	)
	svc := NewStudentService(students, newFakeBatchStore())

	dept := models.DepartmentCE
	year := 2024
	got, err := svc.ListStudents(context.Background(), StudentFilter{Department: &dept, Batch: &year})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "CE-1", got[0].RollNumber)

	_, err = svc.ListStudents(context.Background(), StudentFilter{Batch: intPtr(2020)})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func intPtr(v int) *int { return &v }

func TestUpdateStudentNeverTouchesSeatFields(t *testing.T) {
	students := newFakeStudentStore(
		&models.Student{RollNumber: "CE-1", Name: "Old", Department: models.DepartmentCE, Batch: 2024, CurrentSemester: 1},
	)
	svc := NewStudentService(students, newFakeBatchStore())

	updated, err := svc.UpdateStudent(context.Background(), "CE-1", dto.UpdateStudentRequest{
		Name:            "New",
		CurrentSemester: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, 2, updated.CurrentSemester)
	assert.Equal(t, models.DepartmentCE, updated.Department)
	assert.Equal(t, 2024, updated.Batch)
}

func TestUpdateStudentEmptyPatchReturnsCurrent(t *testing.T) {
	students := newFakeStudentStore(
		&models.Student{RollNumber: "CE-1", Name: "Same"},
	)
	svc := NewStudentService(students, newFakeBatchStore())

	got, err := svc.UpdateStudent(context.Background(), "CE-1", dto.UpdateStudentRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Same", got.Name)
}

func TestAnalytics(t *testing.T) {
	students := newFakeStudentStore(
		&models.Student{RollNumber: "CE-1", Department: models.DepartmentCE, Batch: 2024},
		&models.Student{RollNumber: "CE-2", Department: models.DepartmentCE, Batch: 2024},
		&models.Student{RollNumber: "ME-1", Department: models.DepartmentME, Batch: 2024},
	)
	svc := NewStudentService(students, newFakeBatchStore())

	rows, err := svc.Analytics(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].TotalStudents)
	assert.Equal(t, 2, rows[0].Branches["CE"])

	empty := NewStudentService(newFakeStudentStore(), newFakeBatchStore())
	_, err = empty.Analytics(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrAnalyticsEmpty)
}
