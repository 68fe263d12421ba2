// Package validation registers custom binding rules on gin's validator
// engine. Departments and attendance statuses are closed enumerations
// validated here at the boundary; dates must be DD-MM-YYYY.
package validation

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mayank/campustrack/internal/app/models"
	"github.com/mayank/campustrack/internal/pkg/helpers"
)

// RegisterRules installs the custom validators used by request DTOs.
func RegisterRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator engine is not *validator.Validate")
	}

	if err := v.RegisterValidation("department", validDepartment); err != nil {
		return err
	}
	if err := v.RegisterValidation("attendance_status", validAttendanceStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("ddmmyyyy", validDate); err != nil {
		return err
	}
	return nil
}

func validDepartment(fl validator.FieldLevel) bool {
	return models.Department(fl.Field().String()).IsValid()
}

func validAttendanceStatus(fl validator.FieldLevel) bool {
	return models.AttendanceStatus(fl.Field().String()).IsValid()
}

func validDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(helpers.DateLayout, fl.Field().String())
	return err == nil
}
