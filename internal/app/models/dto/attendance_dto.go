package dto

import "github.com/mayank/campustrack/internal/app/models"

// CreateAttendanceRequest records one student's attendance for a day.
// Dates travel as DD-MM-YYYY strings and are normalized server-side.
type CreateAttendanceRequest struct {
	RollNumber string                  `json:"rollNumber" binding:"required"`
	Date       string                  `json:"date" binding:"required,ddmmyyyy"`
	IsAbsent   models.AttendanceStatus `json:"isAbsent" binding:"required,attendance_status"`
}

// UpdateAttendanceRequest amends an existing day record's status.
type UpdateAttendanceRequest struct {
	RollNumber string                  `json:"rollNumber" binding:"required"`
	Date       string                  `json:"date" binding:"required,ddmmyyyy"`
	IsAbsent   models.AttendanceStatus `json:"isAbsent" binding:"required,attendance_status"`
}

// AbsenteesResponse lists the students marked absent on a day.
type AbsenteesResponse struct {
	Date        string           `json:"date"`
	RollNumbers []string         `json:"rollNumbers"`
	Students    []models.Student `json:"students"`
}

// LowAttendanceRow is one student's row in the low-attendance report.
// The percentage is computed by the aggregation pipeline in the store.
type LowAttendanceRow struct {
	AttendancePercentage float64        `json:"attendancePercentage" bson:"attendancePercentage"`
	StudentDetails       models.Student `json:"studentDetails" bson:"studentDetails"`
}
