package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mayank/campustrack/internal/app/models"
	"github.com/mayank/campustrack/internal/app/models/dto"
	"github.com/mayank/campustrack/internal/app/services"
	"github.com/mayank/campustrack/internal/middleware"
	"github.com/mayank/campustrack/internal/pkg/apperrors"
)

// StudentController handles student enrollment endpoints.
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new student controller
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// Enroll godoc
// @Summary Enroll a student
// @Description Reserves a seat in the batch branch and creates the student record
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student to enroll"
// @Success 201 {object} models.Student
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Batch or branch not found"
// @Failure 409 {object} dto.ErrorResponse "Seat not available or roll number taken"
// @Security BearerAuth
// @Router /students [post]
func (ctrl *StudentController) Enroll(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	student, err := ctrl.studentService.Enroll(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, student)
}

// ListStudents godoc
// @Summary List students
// @Description Returns students, optionally filtered by department and batch
// @Tags students
// @Produce json
// @Param department query string false "Department filter" Enums(CE, ME, EE, EC, CS)
// @Param batch query int false "Enrollment year filter"
// @Success 200 {array} models.Student
// @Failure 404 {object} dto.ErrorResponse "No students match"
// @Security BearerAuth
// @Router /students [get]
func (ctrl *StudentController) ListStudents(c *gin.Context) {
	var filter services.StudentFilter

	if raw := c.Query("department"); raw != "" {
		department := models.Department(raw)
		if !department.IsValid() {
			middleware.HandleAPIError(c, apperrors.NewBadRequestError("unknown department"))
			return
		}
		filter.Department = &department
	}

	if raw := c.Query("batch"); raw != "" {
		batch, err := strconv.Atoi(raw)
		if err != nil {
			middleware.HandleAPIError(c, apperrors.NewBadRequestError("batch must be a number"))
			return
		}
		filter.Batch = &batch
	}

	students, err := ctrl.studentService.ListStudents(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, students)
}

// GetStudent godoc
// @Summary Get a student
// @Description Returns one student by roll number
// @Tags students
// @Produce json
// @Param rollNumber path string true "Roll number"
// @Success 200 {object} models.Student
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /students/{rollNumber} [get]
func (ctrl *StudentController) GetStudent(c *gin.Context) {
	student, err := ctrl.studentService.GetStudent(c.Request.Context(), c.Param("rollNumber"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

// UpdateStudent godoc
// @Summary Update a student
// @Description Patches mutable student fields by roll number
// @Tags students
// @Accept json
// @Produce json
// @Param rollNumber path string true "Roll number"
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} models.Student
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /students/{rollNumber} [put]
func (ctrl *StudentController) UpdateStudent(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	student, err := ctrl.studentService.UpdateStudent(c.Request.Context(), c.Param("rollNumber"), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

// Withdraw godoc
// @Summary Withdraw a student
// @Description Deletes the student record and releases the held seat
// @Tags students
// @Produce json
// @Param rollNumber path string true "Roll number"
// @Success 200 {object} models.Student
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /students/{rollNumber} [delete]
func (ctrl *StudentController) Withdraw(c *gin.Context) {
	student, err := ctrl.studentService.Withdraw(c.Request.Context(), c.Param("rollNumber"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

// Analytics godoc
// @Summary Enrollment analytics
// @Description Per-batch head counts broken down by department
// @Tags students
// @Produce json
// @Success 200 {array} dto.StudentBatchAnalytics
// @Failure 404 {object} dto.ErrorResponse "No students enrolled"
// @Security BearerAuth
// @Router /students/analytics [get]
func (ctrl *StudentController) Analytics(c *gin.Context) {
	rows, err := ctrl.studentService.Analytics(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
