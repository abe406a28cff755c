package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campusdesk/campusdesk/internal/app/controllers"
	"github.com/campusdesk/campusdesk/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	departmentController *controllers.DepartmentController,
	facultyController *controllers.FacultyController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	departments := v1.Group("/departments")
	{
		departments.GET("", departmentController.ListDepartments)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		faculties := authenticated.Group("/faculties")
		{
			faculties.GET("", facultyController.ListFaculties)
			faculties.GET("/:id", facultyController.GetFaculty)
			faculties.POST("", facultyController.CreateFaculty)
			faculties.PUT("/:id", facultyController.UpdateFaculty)
			faculties.DELETE("/:id", facultyController.DeleteFaculty)
		}
	}
}
