package dto

import "github.com/mayank/campustrack/internal/app/models"

// CreateStudentRequest is the enrollment payload.
type CreateStudentRequest struct {
	Name            string            `json:"name" binding:"required,min=2,max=100"`
	RollNumber      string            `json:"rollNumber" binding:"required"`
	MobileNumber    int64             `json:"mobileNumber" binding:"required,gt=0"`
	Department      models.Department `json:"department" binding:"required,department"`
	Batch           int               `json:"batch" binding:"required,gte=2000,lte=2100"`
	CurrentSemester int               `json:"currentSemester" binding:"required,gte=1,lte=8"`
}

// UpdateStudentRequest patches mutable student fields by roll number.
type UpdateStudentRequest struct {
	Name            string `json:"name" binding:"omitempty,min=2,max=100"`
	MobileNumber    int64  `json:"mobileNumber" binding:"omitempty,gt=0"`
	CurrentSemester int    `json:"currentSemester" binding:"omitempty,gte=1,lte=8"`
}

// StudentBatchAnalytics is one row of the per-batch enrollment breakdown.
type StudentBatchAnalytics struct {
	Year          int            `json:"year" bson:"year"`
	TotalStudents int            `json:"totalStudents" bson:"totalStudents"`
	Branches      map[string]int `json:"branches" bson:"branches"`
}
