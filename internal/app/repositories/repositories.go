// Package repositories contains the MongoDB persistence layer. Each
// repository owns one collection and translates driver errors into the
// application's sentinel errors.
package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories holds all repository instances.
type Repositories struct {
	Batch      *BatchRepository
	Student    *StudentRepository
	Attendance *AttendanceRepository
	User       *UserRepository
}

// NewRepositories creates all repositories over one database handle.
func NewRepositories(database *mongo.Database) *Repositories {
	return &Repositories{
		Batch:      NewBatchRepository(database),
		Student:    NewStudentRepository(database),
		Attendance: NewAttendanceRepository(database),
		User:       NewUserRepository(database),
	}
}
