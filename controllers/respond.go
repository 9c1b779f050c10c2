// controllers/respond.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"sangamstay/middleware"
	"sangamstay/services"
	"sangamstay/utils"

	"github.com/gin-gonic/gin"
)

// serviceError maps the core's sentinel errors onto HTTP statuses. Anything
// unrecognized is a 500 with a generic message; the wrapped detail stays in
// the server log only.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, services.ErrNotFound.Error())
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, services.ErrForbidden.Error())
	case errors.Is(err, services.ErrInsufficientInventory):
		utils.JSONError(c, http.StatusConflict, services.ErrInsufficientInventory.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, services.ErrInvalidTransition.Error())
	case errors.Is(err, services.ErrAlreadyCancelled):
		utils.JSONError(c, http.StatusConflict, services.ErrAlreadyCancelled.Error())
	case errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrOccupancyExceeded),
		errors.Is(err, services.ErrMissingGuestField),
		errors.Is(err, services.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		utils.JSONError(c, http.StatusConflict, services.ErrEmailTaken.Error())
	case errors.Is(err, services.ErrBadCredentials):
		utils.JSONError(c, http.StatusUnauthorized, services.ErrBadCredentials.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}

// idParam parses the :id (or named) route parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// actor rebuilds the services.Actor from the auth middleware context.
func actor(c *gin.Context) services.Actor {
	id, role := middleware.Principal(c)
	return services.Actor{ID: id, Role: role}
}
