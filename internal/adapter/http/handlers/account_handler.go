package handlers

import (
	"net/http"

	request "resource_management/internal/adapter/http/dto/request"
	response "resource_management/internal/adapter/http/dto/response"
	"resource_management/internal/adapter/http/middleware"
	"resource_management/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AccountHandler serves the /accounts resource.
type AccountHandler struct {
	usecase       usecase.IAccountUseCase
	demandUseCase usecase.IDemandUseCase
}

func NewAccountHandler(uc usecase.IAccountUseCase, demandUC usecase.IDemandUseCase) *AccountHandler {
	return &AccountHandler{usecase: uc, demandUseCase: demandUC}
}

// ListAccounts godoc
// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Success      200  {object}  response.Envelope{data=[]response.AccountResponse}
// @Failure      500  {object}  pkg.HTTPError
// @Router       /accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapAccountError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromAccounts(accounts)))
}

// GetAccount godoc
// @Summary      Get an account
// @Tags         accounts
// @Produce      json
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  response.Envelope{data=response.AccountResponse}
// @Failure      404  {object}  pkg.HTTPError
// @Router       /accounts/{id} [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapAccountError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromAccount(account)))
}

// CreateAccount godoc
// @Summary      Create an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        account  body      request.AccountCreateRequest  true  "Account"
// @Success      200      {object}  response.Envelope{data=response.AccountResponse}
// @Failure      400      {object}  pkg.HTTPError
// @Router       /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var payload request.AccountCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidAccountPayload)
		return
	}

	account, err := h.usecase.Create(c.Request.Context(), payload.ToInput(), middleware.Actor(c))
	if err != nil {
		writeError(c, mapAccountError(err))
		return
	}
	c.JSON(http.StatusOK, response.OKWithMessage("Account added successfully", response.FromAccount(account)))
}

// UpdateAccount godoc
// @Summary      Update an account
// @Description  Only the fields present in the body change. An empty date string clears the date.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Account ID"
// @Param        account  body      request.AccountUpdateRequest  true  "Fields to change"
// @Success      200      {object}  response.Envelope{data=response.AccountResponse}
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /accounts/{id} [put]
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	var payload request.AccountUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidAccountPayload)
		return
	}

	account, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch(), middleware.Actor(c))
	if err != nil {
		writeError(c, mapAccountError(err))
		return
	}
	c.JSON(http.StatusOK, response.OKWithMessage("Account updated successfully", response.FromAccount(account)))
}

// DeleteAccount godoc
// @Summary      Delete an account
// @Description  Refused while any demand references the account.
// @Tags         accounts
// @Produce      json
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  response.Envelope{data=bool}
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapAccountError(err))
		return
	}
	c.JSON(http.StatusOK, response.OKWithMessage("Account deleted successfully", true))
}

// ListAccountDemands godoc
// @Summary      List the demands of an account
// @Tags         accounts
// @Produce      json
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  response.Envelope{data=[]response.DemandResponse}
// @Failure      404  {object}  pkg.HTTPError
// @Router       /accounts/{id}/demands [get]
func (h *AccountHandler) ListAccountDemands(c *gin.Context) {
	demands, err := h.demandUseCase.ListByAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDemandError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromDemands(demands)))
}
