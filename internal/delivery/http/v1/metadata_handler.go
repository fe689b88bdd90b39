package v1

import (
	"go-genie-backend/internal/delivery/http/response"
	"go-genie-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// MetadataHandler serves the enumerated value lists behind the frontend
// filter pickers.
type MetadataHandler struct{}

func NewMetadataHandler(r *gin.RouterGroup) {
	handler := &MetadataHandler{}
	r.GET("/metadata", handler.Get)
}

// Get godoc
// @Summary      Enumerated picker values
// @Tags         metadata
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /metadata [get]
func (h *MetadataHandler) Get(c *gin.Context) {
	response.OK(c, gin.H{
		"countries":                domain.Countries,
		"languages":                domain.Languages,
		"current_statuses":         domain.CurrentStatuses,
		"job_roles":                domain.JobRoles,
		"financial_support_return": domain.FinancialSupportReturnOptions,
	})
}
