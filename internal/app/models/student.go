package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Student is an enrolled student record. A Student document exists only
// after a successful seat reservation in its batch/branch, and deleting
// it releases the seat again.
type Student struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	RollNumber      string             `json:"rollNumber" bson:"rollNumber"`
	MobileNumber    int64              `json:"mobileNumber" bson:"mobileNumber"`
	Department      Department         `json:"department" bson:"department"`
	Batch           int                `json:"batch" bson:"batch"`
	CurrentSemester int                `json:"currentSemester" bson:"currentSemester"`
	Role            string             `json:"role" bson:"role"`
}
