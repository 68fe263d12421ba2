package validation

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probe struct {
	Department string `validate:"omitempty,department"`
	Status     string `validate:"omitempty,attendance_status"`
	Date       string `validate:"omitempty,ddmmyyyy"`
}

func newProbeValidator(t *testing.T) *validator.Validate {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterRules())

	v := validator.New()
	require.NoError(t, v.RegisterValidation("department", validDepartment))
	require.NoError(t, v.RegisterValidation("attendance_status", validAttendanceStatus))
	require.NoError(t, v.RegisterValidation("ddmmyyyy", validDate))
	return v
}

func TestDepartmentRule(t *testing.T) {
	v := newProbeValidator(t)

	for _, dept := range []string{"CE", "ME", "EE", "EC", "CS"} {
		assert.NoError(t, v.Struct(probe{Department: dept}), dept)
	}
	assert.Error(t, v.Struct(probe{Department: "IT"}))
	assert.Error(t, v.Struct(probe{Department: "ce"}))
}

func TestAttendanceStatusRule(t *testing.T) {
	v := newProbeValidator(t)

	assert.NoError(t, v.Struct(probe{Status: "present"}))
	assert.NoError(t, v.Struct(probe{Status: "absent"}))
	assert.Error(t, v.Struct(probe{Status: "late"}))
	assert.Error(t, v.Struct(probe{Status: "Present"}))
}

func TestDateRule(t *testing.T) {
	v := newProbeValidator(t)

	assert.NoError(t, v.Struct(probe{Date: "05-03-2024"}))
	assert.Error(t, v.Struct(probe{Date: "2024-03-05"}))
	assert.Error(t, v.Struct(probe{Date: "32-01-2024"}))
}
