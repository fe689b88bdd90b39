package v1

import (
	"go-genie-backend/internal/delivery/http/response"
	"go-genie-backend/internal/domain"
	"go-genie-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type DiscoverHandler struct {
	discoverUC domain.DiscoverUsecase
}

func NewDiscoverHandler(r *gin.RouterGroup, protected *gin.RouterGroup, discoverUC domain.DiscoverUsecase, discoverLimiter gin.HandlerFunc) {
	handler := &DiscoverHandler{discoverUC: discoverUC}

	// Public with optional identity; only the cache endpoint requires one.
	r.POST("/discover", discoverLimiter, handler.Discover)
	protected.POST("/discover/last", handler.LastSearch)
}

// Discover godoc
// @Summary      Match students against donor intent
// @Description  Forwards the normalized query to the matching backend and enriches each match with the stored profile
// @Tags         discover
// @Accept       json
// @Produce      json
// @Param        request  body      domain.DiscoverRequest  true  "Believer text plus optional filters"
// @Success      200      {object}  domain.DiscoverResponse
// @Failure      400      {object}  response.ErrorBody
// @Failure      502      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /discover [post]
func (h *DiscoverHandler) Discover(c *gin.Context) {
	var req domain.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("believer_text is required"))
		return
	}

	// Pass 'c' directly: Gin's context carries the auth keys for the
	// last-search cache when the caller is logged in.
	resp, err := h.discoverUC.Discover(c, &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, resp)
}

// LastSearch godoc
// @Summary      Return the caller's cached search for an identical query
// @Tags         discover
// @Accept       json
// @Produce      json
// @Param        request  body      domain.DiscoverRequest  true  "The query to compare against the cached one"
// @Success      200      {object}  domain.CachedSearch
// @Failure      404      {object}  response.ErrorBody
// @Router       /discover/last [post]
// @Security     BearerAuth
func (h *DiscoverHandler) LastSearch(c *gin.Context) {
	var req domain.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("believer_text is required"))
		return
	}

	cached, err := h.discoverUC.LastSearch(c, &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, cached)
}
