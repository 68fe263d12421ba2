// Package controllers contains the HTTP handlers. Controllers bind and
// validate requests, delegate to services, and hand every error to the
// shared error middleware.
package controllers

import (
	"github.com/mayank/campustrack/internal/app/services"
)

// Controllers holds all controller instances.
type Controllers struct {
	Auth       *AuthController
	Batch      *BatchController
	Student    *StudentController
	Attendance *AttendanceController
	User       *UserController
}

// NewControllers wires all controllers over the services.
func NewControllers(svc *services.Services) *Controllers {
	return &Controllers{
		Auth:       NewAuthController(svc.Auth),
		Batch:      NewBatchController(svc.Batch),
		Student:    NewStudentController(svc.Student),
		Attendance: NewAttendanceController(svc.Attendance),
		User:       NewUserController(svc.User),
	}
}
