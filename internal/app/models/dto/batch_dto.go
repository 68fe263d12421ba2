package dto

import "github.com/mayank/campustrack/internal/app/models"

// CreateBranchRequest is the payload for a branch inside a new batch.
type CreateBranchRequest struct {
	Name                models.Department `json:"name" binding:"required,department"`
	TotalStudentsIntake int               `json:"totalStudentsIntake" binding:"required,gt=0"`
	CurrentSeatCount    int               `json:"currentSeatCount" binding:"gte=0"`
}

// CreateBatchRequest is the payload for creating a batch.
type CreateBatchRequest struct {
	Year     int                   `json:"year" binding:"required,gte=2000,lte=2100"`
	Branches []CreateBranchRequest `json:"branches" binding:"dive"`
}

// AddBranchRequest is the payload for adding a branch to an existing batch.
type AddBranchRequest struct {
	Name                models.Department `json:"name" binding:"required,department"`
	TotalStudentsIntake int               `json:"totalStudentsIntake" binding:"required,gt=0"`
	CurrentSeatCount    int               `json:"currentSeatCount" binding:"gte=0"`
}

// UpdateBranchRequest patches a branch in place. Zero-valued fields are
// left untouched.
type UpdateBranchRequest struct {
	NewBranchName       models.Department `json:"newBranchName" binding:"omitempty,department"`
	TotalStudentsIntake int               `json:"totalStudentsIntake" binding:"omitempty,gt=0"`
	CurrentSeatCount    int               `json:"currentSeatCount" binding:"omitempty,gte=0"`
}

// BranchVacancy is the per-branch slice of a vacant seats report.
type BranchVacancy struct {
	TotalStudents       int `json:"totalStudents" bson:"totalStudents"`
	TotalStudentsIntake int `json:"totalStudentsIntake" bson:"totalStudentsIntake"`
	AvailableIntake     int `json:"availableIntake" bson:"availableIntake"`
}

// VacantSeatsReport is the seat-utilization analytics result for a year.
type VacantSeatsReport struct {
	Batch               int                      `json:"batch" bson:"batch"`
	TotalStudents       int                      `json:"totalStudents" bson:"totalStudents"`
	TotalStudentsIntake int                      `json:"totalStudentsIntake" bson:"totalStudentsIntake"`
	AvailableIntake     int                      `json:"availableIntake" bson:"availableIntake"`
	Branch              map[string]BranchVacancy `json:"branch" bson:"branch"`
}
