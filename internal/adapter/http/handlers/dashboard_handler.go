package handlers

import (
	"net/http"

	request "resource_management/internal/adapter/http/dto/request"
	response "resource_management/internal/adapter/http/dto/response"
	"resource_management/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetStats godoc
// @Summary      Dashboard statistics
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Envelope{data=response.DashboardStatsResponse}
// @Failure      500  {object}  pkg.HTTPError
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		writeError(c, mapDashboardError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromDashboardStats(stats)))
}

// Search godoc
// @Summary      Search accounts or demands
// @Description  Case-sensitive substring match. An empty query returns every row.
// @Tags         dashboard
// @Produce      json
// @Param        query   query     string  true   "Substring to look for, may be empty"
// @Param        entity  query     string  true   "accounts or demands"
// @Success      200     {object}  response.Envelope
// @Failure      400     {object}  pkg.HTTPError
// @Router       /search [get]
func (h *DashboardHandler) Search(c *gin.Context) {
	var query request.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidSearchQuery)
		return
	}

	result, err := h.usecase.Search(c.Request.Context(), *query.Query, query.Entity)
	if err != nil {
		writeError(c, mapDashboardError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromSearchResult(result)))
}
