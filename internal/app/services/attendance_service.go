package services

import (
	"context"

	"github.com/mayank/campustrack/internal/app/models"
	"github.com/mayank/campustrack/internal/app/models/dto"
	"github.com/mayank/campustrack/internal/pkg/apperrors"
	"github.com/mayank/campustrack/internal/pkg/helpers"
)

// AttendanceService records and reports per-day attendance. All dates
// arrive as DD-MM-YYYY strings and are normalized to UTC day boundaries
// before touching the store.
type AttendanceService struct {
	attendance AttendanceStore
	students   StudentStore
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(attendance AttendanceStore, students StudentStore) *AttendanceService {
	return &AttendanceService{
		attendance: attendance,
		students:   students,
	}
}

// Record marks a student's attendance for a day. The student must exist,
// and at most one mark per (rollNumber, day) is accepted.
func (s *AttendanceService) Record(ctx context.Context, req dto.CreateAttendanceRequest) (*models.Attendance, error) {
	day, err := helpers.ParseDayStart(req.Date)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if _, err := s.students.GetByRollNumber(ctx, req.RollNumber); err != nil {
		return nil, err
	}

	record := &models.Attendance{
		RollNumber: req.RollNumber,
		Date:       day,
		IsAbsent:   req.IsAbsent,
	}

	if err := s.attendance.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// Amend rewrites the status of an already-recorded day.
func (s *AttendanceService) Amend(ctx context.Context, req dto.UpdateAttendanceRequest) (*models.Attendance, error) {
	day, err := helpers.ParseDayStart(req.Date)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	return s.attendance.Amend(ctx, req.RollNumber, day, req.IsAbsent)
}

// Remove deletes one attendance record of the student.
func (s *AttendanceService) Remove(ctx context.Context, rollNumber string) error {
	return s.attendance.Remove(ctx, rollNumber)
}

// AbsenteesOn reports who was marked absent on the given day, with the
// joined student records.
func (s *AttendanceService) AbsenteesOn(ctx context.Context, date string) (*dto.AbsenteesResponse, error) {
	day, err := helpers.ParseDayStart(date)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	rollNumbers, err := s.attendance.AbsenteesOn(ctx, day)
	if err != nil {
		return nil, err
	}

	students, err := s.students.FindByRollNumbers(ctx, rollNumbers)
	if err != nil {
		return nil, err
	}

	return &dto.AbsenteesResponse{
		Date:        date,
		RollNumbers: rollNumbers,
		Students:    students,
	}, nil
}

// LowAttendance reports students whose attendance over the inclusive
// date window falls under the threshold.
func (s *AttendanceService) LowAttendance(ctx context.Context, startDate, endDate string) ([]dto.LowAttendanceRow, error) {
	start, err := helpers.ParseDayStart(startDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	end, err := helpers.ParseDayEnd(endDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if end.Before(start) {
		return nil, apperrors.NewBadRequestError("endDate must not be before startDate")
	}

	return s.attendance.LowAttendance(ctx, start, end)
}
