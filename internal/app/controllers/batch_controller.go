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

// BatchController handles batch and branch endpoints.
type BatchController struct {
	batchService *services.BatchService
}

// NewBatchController creates a new batch controller
func NewBatchController(batchService *services.BatchService) *BatchController {
	return &BatchController{batchService: batchService}
}

// yearParam parses the :year path parameter.
func yearParam(c *gin.Context) (int, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return 0, apperrors.NewBadRequestError("year must be a number")
	}
	return year, nil
}

// CreateBatch godoc
// @Summary Create a batch
// @Description Creates an enrollment-year batch with its branch seat pools
// @Tags batches
// @Accept json
// @Produce json
// @Param request body dto.CreateBatchRequest true "Batch to create"
// @Success 201 {object} models.Batch
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Batch year already exists"
// @Security BearerAuth
// @Router /batches [post]
func (ctrl *BatchController) CreateBatch(c *gin.Context) {
	var req dto.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	batch, err := ctrl.batchService.CreateBatch(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, batch)
}

// GetBatches godoc
// @Summary List batches
// @Description Returns every batch with its branch seat pools
// @Tags batches
// @Produce json
// @Success 200 {array} models.Batch
// @Security BearerAuth
// @Router /batches [get]
func (ctrl *BatchController) GetBatches(c *gin.Context) {
	batches, err := ctrl.batchService.GetBatches(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, batches)
}

// DeleteBatch godoc
// @Summary Delete a batch
// @Description Removes the batch for a year and returns the removed document
// @Tags batches
// @Produce json
// @Param year path int true "Enrollment year"
// @Success 200 {object} models.Batch
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /batches/{year} [delete]
func (ctrl *BatchController) DeleteBatch(c *gin.Context) {
	year, err := yearParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	deleted, err := ctrl.batchService.DeleteBatch(c.Request.Context(), year)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, deleted)
}

// AddBranch godoc
// @Summary Add a branch
// @Description Adds a branch seat pool to an existing batch
// @Tags batches
// @Accept json
// @Produce json
// @Param year path int true "Enrollment year"
// @Param request body dto.AddBranchRequest true "Branch to add"
// @Success 200 {object} models.Batch
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Branch already exists"
// @Security BearerAuth
// @Router /batches/{year}/branches [post]
func (ctrl *BatchController) AddBranch(c *gin.Context) {
	year, err := yearParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.AddBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	batch, err := ctrl.batchService.AddBranch(c.Request.Context(), year, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, batch)
}

// UpdateBranch godoc
// @Summary Update a branch
// @Description Patches a branch seat pool in place
// @Tags batches
// @Accept json
// @Produce json
// @Param year path int true "Enrollment year"
// @Param name path string true "Branch name" Enums(CE, ME, EE, EC, CS)
// @Param request body dto.UpdateBranchRequest true "Fields to update"
// @Success 200 {object} models.Batch
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /batches/{year}/branches/{name} [put]
func (ctrl *BatchController) UpdateBranch(c *gin.Context) {
	year, err := yearParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	name := models.Department(c.Param("name"))
	if !name.IsValid() {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("unknown branch name"))
		return
	}

	var req dto.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	batch, err := ctrl.batchService.UpdateBranch(c.Request.Context(), year, name, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, batch)
}

// VacantSeats godoc
// @Summary Vacant seats report
// @Description Seat utilization for a year at batch and branch granularity
// @Tags batches
// @Produce json
// @Param year path int true "Enrollment year"
// @Success 200 {object} dto.VacantSeatsReport
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /batches/{year}/vacant-seats [get]
func (ctrl *BatchController) VacantSeats(c *gin.Context) {
	year, err := yearParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	report, err := ctrl.batchService.VacantSeats(c.Request.Context(), year)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
