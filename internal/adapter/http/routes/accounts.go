package routes

import (
	"resource_management/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAccounts = "/accounts"

func addAccountRoutes(rg *gin.RouterGroup, h *handlers.AccountHandler) {
	accounts := rg.Group(PathAccounts)
	{
		accounts.GET("", h.ListAccounts)
		accounts.POST("", h.CreateAccount)
		accounts.GET("/:id", h.GetAccount)
		accounts.PUT("/:id", h.UpdateAccount)
		accounts.DELETE("/:id", h.DeleteAccount)
		accounts.GET("/:id/demands", h.ListAccountDemands)
	}
}
