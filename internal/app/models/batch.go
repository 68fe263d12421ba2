package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Branch is a department-scoped seat pool embedded in a Batch. The
// invariant 0 <= CurrentSeatCount <= TotalStudentsIntake is enforced by
// the seat ledger before mutation, never corrected after.
type Branch struct {
	Name                Department `json:"name" bson:"name"`
	TotalStudentsIntake int        `json:"totalStudentsIntake" bson:"totalStudentsIntake"`
	CurrentSeatCount    int        `json:"currentSeatCount" bson:"currentSeatCount"`
}

// Available returns the number of unreserved seats in the branch.
func (b Branch) Available() int {
	return b.TotalStudentsIntake - b.CurrentSeatCount
}

// Batch is a cohort identified by its enrollment year. The embedded
// branches' currentSeatCount is the sole source of truth for occupancy;
// it is never derived by counting Student documents.
type Batch struct {
	ID                    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Year                  int                `json:"year" bson:"year"`
	Branches              []Branch           `json:"branches" bson:"branches"`
	TotalEnrolledStudents int                `json:"totalEnrolledStudents" bson:"totalEnrolledStudents"`
}

// Branch returns the branch with the given name, or nil.
func (b *Batch) Branch(name Department) *Branch {
	for i := range b.Branches {
		if b.Branches[i].Name == name {
			return &b.Branches[i]
		}
	}
	return nil
}
