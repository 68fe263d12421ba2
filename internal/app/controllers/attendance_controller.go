package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mayank/campustrack/internal/app/models/dto"
	"github.com/mayank/campustrack/internal/app/services"
	"github.com/mayank/campustrack/internal/middleware"
	"github.com/mayank/campustrack/internal/pkg/apperrors"
)

// AttendanceController handles attendance endpoints.
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new attendance controller
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// Record godoc
// @Summary Record attendance
// @Description Records one student's attendance mark for a day
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.CreateAttendanceRequest true "Mark to record"
// @Success 201 {object} models.Attendance
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Day already recorded"
// @Security BearerAuth
// @Router /attendance [post]
func (ctrl *AttendanceController) Record(c *gin.Context) {
	var req dto.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	record, err := ctrl.attendanceService.Record(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// Amend godoc
// @Summary Amend attendance
// @Description Rewrites the status of an already-recorded day
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.UpdateAttendanceRequest true "Mark to amend"
// @Success 200 {object} models.Attendance
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /attendance [put]
func (ctrl *AttendanceController) Amend(c *gin.Context) {
	var req dto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	record, err := ctrl.attendanceService.Amend(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Remove godoc
// @Summary Remove attendance
// @Description Deletes one attendance record of the student
// @Tags attendance
// @Produce json
// @Param rollNumber path string true "Roll number"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /attendance/{rollNumber} [delete]
func (ctrl *AttendanceController) Remove(c *gin.Context) {
	if err := ctrl.attendanceService.Remove(c.Request.Context(), c.Param("rollNumber")); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "attendance record deleted"})
}

// Absentees godoc
// @Summary Absentees of a day
// @Description Lists the students marked absent on the given day
// @Tags attendance
// @Produce json
// @Param date query string true "Day (DD-MM-YYYY)"
// @Success 200 {object} dto.AbsenteesResponse
// @Failure 404 {object} dto.ErrorResponse "Nobody absent that day"
// @Security BearerAuth
// @Router /attendance/absentees [get]
func (ctrl *AttendanceController) Absentees(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("date query parameter is required"))
		return
	}

	report, err := ctrl.attendanceService.AbsenteesOn(c.Request.Context(), date)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// LowAttendance godoc
// @Summary Low attendance report
// @Description Students whose attendance over the window falls under 75 percent
// @Tags attendance
// @Produce json
// @Param startDate query string true "Window start (DD-MM-YYYY)"
// @Param endDate query string true "Window end (DD-MM-YYYY)"
// @Success 200 {array} dto.LowAttendanceRow
// @Failure 404 {object} dto.ErrorResponse "No data in the window"
// @Security BearerAuth
// @Router /attendance/low-attendance [get]
func (ctrl *AttendanceController) LowAttendance(c *gin.Context) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate == "" || endDate == "" {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("startDate and endDate query parameters are required"))
		return
	}

	rows, err := ctrl.attendanceService.LowAttendance(c.Request.Context(), startDate, endDate)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
