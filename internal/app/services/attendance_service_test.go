package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayank/campustrack/internal/app/models"
	"github.com/mayank/campustrack/internal/app/models/dto"
	"github.com/mayank/campustrack/internal/pkg/apperrors"
)

func newAttendanceFixture() (*AttendanceService, *fakeAttendanceStore, *fakeStudentStore) {
	students := newFakeStudentStore(
		&models.Student{RollNumber: "CE-1", Name: "One", Department: models.DepartmentCE, Batch: 2024},
		&models.Student{RollNumber: "CE-2", Name: "Two", Department: models.DepartmentCE, Batch: 2024},
	)
	attendance := newFakeAttendanceStore(students)
	return NewAttendanceService(attendance, students), attendance, students
}

func TestRecordNormalizesDate(t *testing.T) {
	svc, _, _ := newAttendanceFixture()

	record, err := svc.Record(context.Background(), dto.CreateAttendanceRequest{
		RollNumber: "CE-1",
		Date:       "05-03-2024",
		IsAbsent:   models.StatusPresent,
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), record.Date)
	assert.Equal(t, models.StatusPresent, record.IsAbsent)
}

func TestRecordRequiresExistingStudent(t *testing.T) {
	svc, attendance, _ := newAttendanceFixture()

	_, err := svc.Record(context.Background(), dto.CreateAttendanceRequest{
		RollNumber: "ghost",
		Date:       "05-03-2024",
		IsAbsent:   models.StatusAbsent,
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.Empty(t, attendance.records)
}

func TestRecordSameDayTwiceConflicts(t *testing.T) {
	svc, _, _ := newAttendanceFixture()

	req := dto.CreateAttendanceRequest{
		RollNumber: "CE-1",
		Date:       "05-03-2024",
		IsAbsent:   models.StatusPresent,
	}

	_, err := svc.Record(context.Background(), req)
	require.NoError(t, err)

	req.IsAbsent = models.StatusAbsent
	_, err = svc.Record(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrAttendanceAlreadyRecorded)
}

func TestRecordRejectsBadDate(t *testing.T) {
	svc, _, _ := newAttendanceFixture()

	_, err := svc.Record(context.Background(), dto.CreateAttendanceRequest{
		RollNumber: "CE-1",
		Date:       "2024-03-05",
		IsAbsent:   models.StatusPresent,
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestAmendRewritesStatus(t *testing.T) {
	svc, _, _ := newAttendanceFixture()

	_, err := svc.Record(context.Background(), dto.CreateAttendanceRequest{
		RollNumber: "CE-1",
		Date:       "05-03-2024",
		IsAbsent:   models.StatusPresent,
	})
	require.NoError(t, err)

	amended, err := svc.Amend(context.Background(), dto.UpdateAttendanceRequest{
		RollNumber: "CE-1",
		Date:       "05-03-2024",
		IsAbsent:   models.StatusAbsent,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusAbsent, amended.IsAbsent)
}

func TestAmendUnrecordedDay(t *testing.T) {
	svc, _, _ := newAttendanceFixture()

	_, err := svc.Amend(context.Background(), dto.UpdateAttendanceRequest{
		RollNumber: "CE-1",
		Date:       "05-03-2024",
		IsAbsent:   models.StatusAbsent,
	})
	assert.ErrorIs(t, err, apperrors.ErrAttendanceNotFound)
}

func TestAbsenteesOnJoinsStudents(t *testing.T) {
	svc, _, _ := newAttendanceFixture()

	for roll, status := range map[string]models.AttendanceStatus{
		"CE-1": models.StatusAbsent,
		"CE-2": models.StatusPresent,
	} {
		_, err := svc.Record(context.Background(), dto.CreateAttendanceRequest{
			RollNumber: roll,
			Date:       "05-03-2024",
			IsAbsent:   status,
		})
		require.NoError(t, err)
	}

	report, err := svc.AbsenteesOn(context.Background(), "05-03-2024")
	require.NoError(t, err)

	assert.Equal(t, "05-03-2024", report.Date)
	assert.Equal(t, []string{"CE-1"}, report.RollNumbers)
	require.Len(t, report.Students, 1)
	assert.Equal(t, "One", report.Students[0].Name)
}

func TestAbsenteesOnEmptyDay(t *testing.T) {
	svc, _, _ := newAttendanceFixture()

	_, err := svc.AbsenteesOn(context.Background(), "05-03-2024")
	assert.ErrorIs(t, err, apperrors.ErrNoAbsenteesFound)
}

func TestLowAttendanceValidatesWindow(t *testing.T) {
	svc, _, _ := newAttendanceFixture()

	_, err := svc.LowAttendance(context.Background(), "10-03-2024", "05-03-2024")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.LowAttendance(context.Background(), "bad", "05-03-2024")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	// Valid window, no data.
	_, err = svc.LowAttendance(context.Background(), "01-03-2024", "05-03-2024")
	assert.ErrorIs(t, err, apperrors.ErrAnalyticsEmpty)
}

func TestLowAttendanceAppliesThreshold(t *testing.T) {
	svc, _, _ := newAttendanceFixture()

	// Over ten school days CE-1 attends 3 (30%, reported) and CE-2
	// attends 8 (80%, above the 75 threshold).
	for day := 1; day <= 10; day++ {
		for roll, attended := range map[string]int{"CE-1": 3, "CE-2": 8} {
			status := models.StatusAbsent
			if day <= attended {
				status = models.StatusPresent
			}
			_, err := svc.Record(context.Background(), dto.CreateAttendanceRequest{
				RollNumber: roll,
				Date:       fmt.Sprintf("%02d-03-2024", day),
				IsAbsent:   status,
			})
			require.NoError(t, err)
		}
	}

	rows, err := svc.LowAttendance(context.Background(), "01-03-2024", "10-03-2024")
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "CE-1", rows[0].StudentDetails.RollNumber)
	assert.Equal(t, "One", rows[0].StudentDetails.Name)
	assert.InDelta(t, 30.0, rows[0].AttendancePercentage, 0.001)
}

func TestRemoveAttendance(t *testing.T) {
	svc, _, _ := newAttendanceFixture()

	_, err := svc.Record(context.Background(), dto.CreateAttendanceRequest{
		RollNumber: "CE-1",
		Date:       "05-03-2024",
		IsAbsent:   models.StatusPresent,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), "CE-1"))
	assert.ErrorIs(t, svc.Remove(context.Background(), "CE-1"), apperrors.ErrAttendanceNotFound)
}
