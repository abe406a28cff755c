package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/campusdesk/internal/app/models"
	"github.com/campusdesk/campusdesk/internal/app/models/dto"
)

// DepartmentController serves the department directory
type DepartmentController struct{}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController() *DepartmentController {
	return &DepartmentController{}
}

// ListDepartments lists the browsable departments
// @Summary List departments
// @Description Retrieves the fixed department directory of the dashboard
// @Tags departments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DepartmentListResponse} "Departments retrieved successfully"
// @Router /departments [get]
func (c *DepartmentController) ListDepartments(ctx *gin.Context) {
	departments := make([]dto.DepartmentResponse, 0, len(models.Departments))
	for _, d := range models.Departments {
		departments = append(departments, dto.DepartmentResponse{
			Code: d.Code,
			Name: d.Name,
		})
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.DepartmentListResponse{Departments: departments},
		Timestamp: time.Now(),
	})
}
