// Package routes mounts the API surface. All routes live under /api/v1;
// mutations require the admin role, reads any authenticated account.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mayank/campustrack/internal/app/controllers"
	"github.com/mayank/campustrack/internal/app/models"
	"github.com/mayank/campustrack/internal/middleware"
	"github.com/mayank/campustrack/internal/pkg/auth"
)

// RegisterRoutes mounts every endpoint on the router.
func RegisterRoutes(router *gin.Engine, ctrl *controllers.Controllers, jwtService *auth.JWTService) {
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1.POST("/auth/login", ctrl.Auth.Login)

	authed := v1.Group("")
	authed.Use(middleware.JWTAuth(jwtService))

	adminOnly := middleware.RoleRequired(models.RoleAdmin)

	users := authed.Group("/users")
	users.Use(adminOnly)
	{
		users.POST("", ctrl.User.Register)
		users.GET("", ctrl.User.ListUsers)
		users.GET("/:mobileNumber", ctrl.User.GetUser)
		users.PUT("/:mobileNumber", ctrl.User.UpdateUser)
		users.DELETE("/:mobileNumber", ctrl.User.DeleteUser)
	}

	batches := authed.Group("/batches")
	{
		batches.GET("", ctrl.Batch.GetBatches)
		batches.GET("/:year/vacant-seats", ctrl.Batch.VacantSeats)

		batches.POST("", adminOnly, ctrl.Batch.CreateBatch)
		batches.DELETE("/:year", adminOnly, ctrl.Batch.DeleteBatch)
		batches.POST("/:year/branches", adminOnly, ctrl.Batch.AddBranch)
		batches.PUT("/:year/branches/:name", adminOnly, ctrl.Batch.UpdateBranch)
	}

	students := authed.Group("/students")
	{
		students.GET("", ctrl.Student.ListStudents)
		students.GET("/analytics", ctrl.Student.Analytics)
		students.GET("/:rollNumber", ctrl.Student.GetStudent)

		students.POST("", adminOnly, ctrl.Student.Enroll)
		students.PUT("/:rollNumber", adminOnly, ctrl.Student.UpdateStudent)
		students.DELETE("/:rollNumber", adminOnly, ctrl.Student.Withdraw)
	}

	attendance := authed.Group("/attendance")
	{
		attendance.GET("/absentees", ctrl.Attendance.Absentees)
		attendance.GET("/low-attendance", ctrl.Attendance.LowAttendance)

		attendance.POST("", adminOnly, ctrl.Attendance.Record)
		attendance.PUT("", adminOnly, ctrl.Attendance.Amend)
		attendance.DELETE("/:rollNumber", adminOnly, ctrl.Attendance.Remove)
	}
}
