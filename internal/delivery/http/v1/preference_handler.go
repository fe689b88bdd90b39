package v1

import (
	"go-genie-backend/internal/delivery/http/response"
	"go-genie-backend/internal/domain"
	"go-genie-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PreferenceHandler struct {
	prefUC domain.PreferenceUsecase
}

func NewPreferenceHandler(protected *gin.RouterGroup, prefUC domain.PreferenceUsecase) {
	handler := &PreferenceHandler{prefUC: prefUC}

	prefs := protected.Group("/preferences")
	{
		prefs.GET("", handler.Get)
		prefs.PUT("", handler.Save)
	}
}

// Get godoc
// @Summary      Get the donor's saved discover preferences
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  domain.DiscoverPreferences
// @Router       /preferences [get]
// @Security     BearerAuth
func (h *PreferenceHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	prefs, err := h.prefUC.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, prefs)
}

// Save godoc
// @Summary      Save the donor's discover preferences
// @Description  Last write wins, mirroring the localStorage behavior it replaces
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        request  body      domain.DiscoverPreferences  true  "Preferences blob"
// @Success      200      {object}  map[string]bool
// @Failure      400      {object}  response.ErrorBody
// @Router       /preferences [put]
// @Security     BearerAuth
func (h *PreferenceHandler) Save(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var prefs domain.DiscoverPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.Error(apperror.BadRequest("invalid preferences payload"))
		return
	}

	if err := h.prefUC.SavePreferences(c.Request.Context(), userID, &prefs); err != nil {
		c.Error(err)
		return
	}

	response.OK(c, gin.H{"success": true})
}
