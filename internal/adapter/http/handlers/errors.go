package handlers

import (
	"errors"
	"net/http"
	"strings"

	"resource_management/internal/usecase"
	"resource_management/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAccountPayload = pkg.NewDomainErrorSimple("INVALID_ACCOUNT_INPUT", "Invalid account payload", http.StatusBadRequest)
	errInvalidDemandPayload  = pkg.NewDomainErrorSimple("INVALID_DEMAND_INPUT", "Invalid demand payload", http.StatusBadRequest)
	errInvalidCloneCount     = pkg.NewDomainErrorSimple("INVALID_CLONE_COUNT", "count must be between 1 and 10", http.StatusBadRequest)
	errInvalidSearchQuery    = pkg.NewDomainErrorSimple("INVALID_SEARCH_QUERY", "query and entity are required", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// validationError keeps the detail after the kind prefix so the client
// sees which field was rejected.
func validationError(err error) *pkg.AppError {
	msg := strings.TrimPrefix(err.Error(), usecase.ErrValidation.Error()+": ")
	return pkg.NewDomainErrorSimple("VALIDATION_ERROR", msg, http.StatusBadRequest)
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func mapAccountError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAccountNotFound):
		return pkg.NewDomainErrorSimple("ACCOUNT_NOT_FOUND", "Account not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAccountHasDemands):
		return pkg.NewDomainErrorSimple("ACCOUNT_HAS_DEMANDS", "Cannot delete account with linked demands", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrValidation):
		return validationError(err)
	default:
		return internalError(err)
	}
}

func mapDemandError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDemandNotFound):
		return pkg.NewDomainErrorSimple("DEMAND_NOT_FOUND", "Demand not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReferencedAccountNotFound), errors.Is(err, usecase.ErrAccountNotFound):
		return pkg.NewDomainErrorSimple("ACCOUNT_NOT_FOUND", "Account not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrValidation):
		return validationError(err)
	case errors.Is(err, usecase.ErrConstraintViolation):
		return pkg.NewDomainErrorSimple("CONSTRAINT_VIOLATION", "Constraint violation", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSearchEntity):
		return pkg.NewDomainErrorSimple("INVALID_SEARCH_ENTITY", "Invalid entity. Use 'accounts' or 'demands'", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrValidation):
		return validationError(err)
	default:
		return internalError(err)
	}
}
