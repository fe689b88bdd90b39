package v1

import (
	"go-genie-backend/internal/delivery/http/response"
	"go-genie-backend/internal/domain"
	"go-genie-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type GenieHandler struct {
	genieUC domain.GenieUsecase
}

func NewGenieHandler(protected *gin.RouterGroup, genieUC domain.GenieUsecase) {
	handler := &GenieHandler{genieUC: genieUC}

	genie := protected.Group("/genie")
	{
		genie.POST("", handler.Upsert)
		genie.GET("/me", handler.Me)
	}
}

// Upsert godoc
// @Summary      Create or overwrite the donor's own profile
// @Tags         genie
// @Accept       json
// @Produce      json
// @Param        request  body      domain.GenieProfile  true  "Donor profile"
// @Success      200      {object}  map[string]bool
// @Failure      400      {object}  response.ErrorBody
// @Router       /genie [post]
// @Security     BearerAuth
func (h *GenieHandler) Upsert(c *gin.Context) {
	var profile domain.GenieProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(apperror.BadRequest("invalid profile payload"))
		return
	}

	if err := h.genieUC.UpsertProfile(c, &profile); err != nil {
		c.Error(err)
		return
	}

	response.OK(c, gin.H{"success": true})
}

// Me godoc
// @Summary      Get the donor's own profile
// @Tags         genie
// @Produce      json
// @Success      200  {object}  domain.GenieProfile
// @Failure      404  {object}  response.ErrorBody
// @Router       /genie/me [get]
// @Security     BearerAuth
func (h *GenieHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.genieUC.GetProfile(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, profile)
}
