package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendance is a per-student per-day presence record. Date is always
// normalized to the start of its UTC calendar day; at most one record
// exists per (rollNumber, date), backed by a unique compound index.
type Attendance struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RollNumber string             `json:"rollNumber" bson:"rollNumber"`
	Date       time.Time          `json:"date" bson:"date"`
	IsAbsent   AttendanceStatus   `json:"isAbsent" bson:"isAbsent"`
	CreatedAt  time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt  time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
