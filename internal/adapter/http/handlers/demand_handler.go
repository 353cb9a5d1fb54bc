package handlers

import (
	"fmt"
	"net/http"

	request "resource_management/internal/adapter/http/dto/request"
	response "resource_management/internal/adapter/http/dto/response"
	"resource_management/internal/adapter/http/middleware"
	"resource_management/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DemandHandler serves the /demands resource.
type DemandHandler struct {
	usecase usecase.IDemandUseCase
}

func NewDemandHandler(uc usecase.IDemandUseCase) *DemandHandler {
	return &DemandHandler{usecase: uc}
}

// ListDemands godoc
// @Summary      List demands
// @Tags         demands
// @Produce      json
// @Success      200  {object}  response.Envelope{data=[]response.DemandResponse}
// @Failure      500  {object}  pkg.HTTPError
// @Router       /demands [get]
func (h *DemandHandler) ListDemands(c *gin.Context) {
	demands, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapDemandError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromDemands(demands)))
}

// GetDemand godoc
// @Summary      Get a demand
// @Tags         demands
// @Produce      json
// @Param        id   path      string  true  "Demand ID"
// @Success      200  {object}  response.Envelope{data=response.DemandResponse}
// @Failure      404  {object}  pkg.HTTPError
// @Router       /demands/{id} [get]
func (h *DemandHandler) GetDemand(c *gin.Context) {
	demand, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDemandError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromDemand(demand)))
}

// CreateDemand godoc
// @Summary      Create a demand
// @Tags         demands
// @Accept       json
// @Produce      json
// @Param        demand  body      request.DemandCreateRequest  true  "Demand"
// @Success      200     {object}  response.Envelope{data=response.DemandResponse}
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Router       /demands [post]
func (h *DemandHandler) CreateDemand(c *gin.Context) {
	var payload request.DemandCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidDemandPayload)
		return
	}

	demand, err := h.usecase.Create(c.Request.Context(), payload.ToInput(), middleware.Actor(c))
	if err != nil {
		writeError(c, mapDemandError(err))
		return
	}
	c.JSON(http.StatusOK, response.OKWithMessage("Demand added successfully", response.FromDemand(demand)))
}

// UpdateDemand godoc
// @Summary      Update a demand
// @Description  Only the fields present in the body change. An empty date string clears the date.
// @Tags         demands
// @Accept       json
// @Produce      json
// @Param        id      path      string                       true  "Demand ID"
// @Param        demand  body      request.DemandUpdateRequest  true  "Fields to change"
// @Success      200     {object}  response.Envelope{data=response.DemandResponse}
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Router       /demands/{id} [put]
func (h *DemandHandler) UpdateDemand(c *gin.Context) {
	var payload request.DemandUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidDemandPayload)
		return
	}

	demand, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch(), middleware.Actor(c))
	if err != nil {
		writeError(c, mapDemandError(err))
		return
	}
	c.JSON(http.StatusOK, response.OKWithMessage("Demand updated successfully", response.FromDemand(demand)))
}

// DeleteDemand godoc
// @Summary      Delete a demand
// @Tags         demands
// @Produce      json
// @Param        id   path      string  true  "Demand ID"
// @Success      200  {object}  response.Envelope{data=bool}
// @Failure      404  {object}  pkg.HTTPError
// @Router       /demands/{id} [delete]
func (h *DemandHandler) DeleteDemand(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapDemandError(err))
		return
	}
	c.JSON(http.StatusOK, response.OKWithMessage("Demand deleted successfully", true))
}

// CloneDemand godoc
// @Summary      Clone a demand
// @Description  Creates count copies with fresh ids and audit fields.
// @Tags         demands
// @Produce      json
// @Param        id     path      string  true   "Demand ID"
// @Param        count  query     int     false  "Number of copies (1-10)"  default(1)
// @Success      200    {object}  response.Envelope{data=[]response.DemandResponse}
// @Failure      400    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Router       /demands/{id}/clone [post]
func (h *DemandHandler) CloneDemand(c *gin.Context) {
	var query request.CloneQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidCloneCount)
		return
	}

	clones, err := h.usecase.Clone(c.Request.Context(), c.Param("id"), query.Count, middleware.Actor(c))
	if err != nil {
		writeError(c, mapDemandError(err))
		return
	}
	msg := fmt.Sprintf("%d demand(s) cloned successfully", len(clones))
	c.JSON(http.StatusOK, response.OKWithMessage(msg, response.FromDemands(clones)))
}
