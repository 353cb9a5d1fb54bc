package routes

import (
	"resource_management/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathDemands = "/demands"

func addDemandRoutes(rg *gin.RouterGroup, h *handlers.DemandHandler) {
	demands := rg.Group(PathDemands)
	{
		demands.GET("", h.ListDemands)
		demands.POST("", h.CreateDemand)
		demands.GET("/:id", h.GetDemand)
		demands.PUT("/:id", h.UpdateDemand)
		demands.DELETE("/:id", h.DeleteDemand)
		demands.POST("/:id/clone", h.CloneDemand)
	}
}
