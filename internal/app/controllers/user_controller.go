package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mayank/campustrack/internal/app/models/dto"
	"github.com/mayank/campustrack/internal/app/services"
	"github.com/mayank/campustrack/internal/middleware"
	"github.com/mayank/campustrack/internal/pkg/apperrors"
)

// UserController handles account management endpoints.
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new user controller
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// mobileNumberParam parses the :mobileNumber path parameter.
func mobileNumberParam(c *gin.Context) (int64, error) {
	mobileNumber, err := strconv.ParseInt(c.Param("mobileNumber"), 10, 64)
	if err != nil {
		return 0, apperrors.NewBadRequestError("mobileNumber must be a number")
	}
	return mobileNumber, nil
}

// Register godoc
// @Summary Register an account
// @Description Creates a staff or admin account; at most one admin exists
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Account to create"
// @Success 201 {object} models.User
// @Failure 409 {object} dto.ErrorResponse "Mobile number taken or admin exists"
// @Security BearerAuth
// @Router /users [post]
func (ctrl *UserController) Register(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	user, err := ctrl.userService.Register(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ListUsers godoc
// @Summary List accounts
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Security BearerAuth
// @Router /users [get]
func (ctrl *UserController) ListUsers(c *gin.Context) {
	users, err := ctrl.userService.ListUsers(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get an account
// @Tags users
// @Produce json
// @Param mobileNumber path int true "Mobile number"
// @Success 200 {object} models.User
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/{mobileNumber} [get]
func (ctrl *UserController) GetUser(c *gin.Context) {
	mobileNumber, err := mobileNumberParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	user, err := ctrl.userService.GetUser(c.Request.Context(), mobileNumber)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Update an account
// @Tags users
// @Accept json
// @Produce json
// @Param mobileNumber path int true "Mobile number"
// @Param request body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} models.User
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/{mobileNumber} [put]
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	mobileNumber, err := mobileNumberParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	user, err := ctrl.userService.UpdateUser(c.Request.Context(), mobileNumber, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Delete an account
// @Tags users
// @Produce json
// @Param mobileNumber path int true "Mobile number"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/{mobileNumber} [delete]
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	mobileNumber, err := mobileNumberParam(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.userService.DeleteUser(c.Request.Context(), mobileNumber); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "user deleted"})
}
