package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/campusdesk/internal/app/forms"
	"github.com/campusdesk/campusdesk/internal/app/models"
	"github.com/campusdesk/campusdesk/internal/app/models/dto"
	"github.com/campusdesk/campusdesk/internal/app/services"
	"github.com/campusdesk/campusdesk/internal/middleware"
	"github.com/campusdesk/campusdesk/internal/pkg/apperrors"
	"github.com/campusdesk/campusdesk/internal/pkg/assetstorage"
)

// FacultyController handles faculty profile operations. Create and update
// run through the form workflow; listing, detail and deletion go through
// the faculty service.
type FacultyController struct {
	facultyService *services.FacultyService
	formRepo       forms.Repository
	storage        assetstorage.Storage
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService *services.FacultyService, formRepo forms.Repository, storage assetstorage.Storage) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
		formRepo:       formRepo,
		storage:        storage,
	}
}

// apiNotifier collects workflow outcome messages for the HTTP response.
type apiNotifier struct {
	message string
}

func (n *apiNotifier) Success(message string) { n.message = message }
func (n *apiNotifier) Error(message string)   { n.message = message }

// ListFaculties lists a department's faculty profiles
// @Summary List faculty by department
// @Description Retrieves every faculty profile of a department
// @Tags faculties
// @Produce json
// @Security BearerAuth
// @Param department query string true "Department code (e.g. cse)"
// @Success 200 {object} dto.APIResponse{data=dto.FacultyListResponse} "Faculties retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Unknown department code"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculties [get]
func (c *FacultyController) ListFaculties(ctx *gin.Context) {
	code := ctx.Query("department")
	if code == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Department code is required").
			WithField("department")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	records, err := c.facultyService.ListByDepartment(ctx, code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	faculties := make([]dto.FacultyResponse, 0, len(records))
	for _, record := range records {
		faculties = append(faculties, dto.ToFacultyResponse(record))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.FacultyListResponse{
			DepartmentCode: code,
			DepartmentName: models.DepartmentNameFor(code),
			Faculties:      faculties,
		},
		Timestamp: time.Now(),
	})
}

// GetFaculty retrieves a single faculty profile
// @Summary Get faculty by ID
// @Description Retrieves a specific faculty profile
// @Tags faculties
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=dto.FacultyResponse} "Faculty retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculties/{id} [get]
func (c *FacultyController) GetFaculty(ctx *gin.Context) {
	record, err := c.facultyService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.ToFacultyResponse(record),
		Timestamp: time.Now(),
	})
}

// CreateFaculty creates a faculty profile
// @Summary Create faculty
// @Description Creates a faculty profile from the dashboard form. Repeatable fields arrive as repeated form values; the photo as the optional "image" file part.
// @Tags faculties
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Faculty name"
// @Param departmentCode formData string true "Department code (e.g. cse)"
// @Param image formData file false "Profile photo"
// @Success 201 {object} dto.APIResponse "Faculty created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Unknown department code"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculties [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.FacultyRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if models.DepartmentNameFor(req.DepartmentCode) == "" {
		middleware.HandleAPIError(ctx, apperrors.ErrUnknownDepartment)
		return
	}

	notifier := &apiNotifier{}
	form := forms.NewCreateForm(req.DepartmentCode, c.formRepo, c.storage, notifier)

	if err := c.applyRequest(ctx, form, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	redirect, err := form.Submit(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      gin.H{"redirect": redirect},
		Message:   notifier.message,
		Timestamp: time.Now(),
	})
}

// UpdateFaculty updates a faculty profile
// @Summary Update faculty
// @Description Updates a faculty profile through the dashboard form. Sending removeImage=true without a new file deletes the stored photo.
// @Tags faculties
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Param name formData string true "Faculty name"
// @Param departmentCode formData string true "Department code (e.g. cse)"
// @Param removeImage formData boolean false "Remove the stored photo"
// @Param image formData file false "Replacement photo"
// @Success 200 {object} dto.APIResponse "Faculty updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculties/{id} [put]
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	var req dto.FacultyRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	notifier := &apiNotifier{}
	form, err := forms.LoadForEdit(ctx, ctx.Param("id"), req.DepartmentCode, c.formRepo, c.storage, notifier)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// The request carries the final list contents, so the loaded lists
	// are replaced entry by entry.
	for _, f := range models.RepeatableFields {
		for len(form.Entries(f.Key)) > 0 {
			form.RemoveEntry(f.Key, 0)
		}
	}

	if err := c.applyRequest(ctx, form, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if req.RemoveImage {
		form.RemoveImage()
	}

	redirect, err := form.Submit(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"redirect": redirect},
		Message:   notifier.message,
		Timestamp: time.Now(),
	})
}

// DeleteFaculty removes a faculty profile
// @Summary Delete faculty
// @Description Removes a faculty profile and its stored photo
// @Tags faculties
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.SuccessResponse "Faculty deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculties/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	if err := c.facultyService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Faculty deleted successfully"})
}

// applyRequest pushes the bound request into the form: fixed fields, list
// entries and the optional photo file part.
func (c *FacultyController) applyRequest(ctx *gin.Context, form *forms.FacultyForm, req *dto.FacultyRequest) error {
	form.SetField("name", req.Name)
	form.SetField("designation", req.Designation)
	form.SetField("qualification", req.Qualification)
	form.SetField("specialization", req.Specialization)
	form.SetField("email", req.Email)
	form.SetField("contact", req.Contact)
	form.SetField("joinDate", req.JoinDate)

	for key, values := range req.Lists() {
		for _, value := range values {
			form.StageInput(key, value)
			form.AddEntry(key)
		}
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		// No file part attached.
		return nil
	}

	src, err := file.Open()
	if err != nil {
		return apperrors.NewBadRequestError("failed to read uploaded image")
	}

	form.SelectImage(&forms.PendingImage{
		Filename: file.Filename,
		Content:  src,
		Release:  func() { src.Close() },
	})
	return nil
}
