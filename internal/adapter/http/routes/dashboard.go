package routes

import (
	"resource_management/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDashboard = "/dashboard"
	PathSearch    = "/search"
)

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	rg.GET(PathDashboard+"/stats", h.GetStats)
	rg.GET(PathSearch, h.Search)
}
