package v1

import (
	"strconv"

	"go-genie-backend/internal/delivery/http/response"
	"go-genie-backend/internal/domain"
	"go-genie-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	studentUC domain.StudentUsecase
}

func NewStudentHandler(r *gin.RouterGroup, studentUC domain.StudentUsecase) {
	handler := &StudentHandler{studentUC: studentUC}

	students := r.Group("/students")
	{
		students.POST("", handler.Upsert)
		students.GET("", handler.List)
		students.GET("/:user_id", handler.Get)
	}
}

// Upsert godoc
// @Summary      Create or overwrite a student profile
// @Description  Idempotent full overwrite keyed by user_id; numeric and array fields are coerced loosely
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        request  body      domain.StudentUpsertRequest  true  "Profile fields keyed by user_id"
// @Success      200      {object}  map[string]bool
// @Failure      400      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /students [post]
func (h *StudentHandler) Upsert(c *gin.Context) {
	var req domain.StudentUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("user_id is required"))
		return
	}

	if err := h.studentUC.Upsert(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.OK(c, gin.H{"success": true})
}

// Get godoc
// @Summary      Fetch one student profile
// @Tags         students
// @Produce      json
// @Param        user_id  path      string  true  "Student user id"
// @Success      200      {object}  domain.StudentProfile
// @Failure      404      {object}  response.ErrorBody
// @Router       /students/{user_id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	profile, err := h.studentUC.GetProfile(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, profile)
}

// List godoc
// @Summary      List student profiles, newest first
// @Tags         students
// @Produce      json
// @Param        limit  query     int  false  "Max rows (default 50, cap 200)"
// @Success      200    {array}   domain.StudentProfile
// @Router       /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	profiles, err := h.studentUC.ListProfiles(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}
	if profiles == nil {
		profiles = []domain.StudentProfile{}
	}

	response.OK(c, profiles)
}
