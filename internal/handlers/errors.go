package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilhadomel/passeios/internal/models"
)

// respondError maps the engine's error taxonomy onto HTTP statuses. Every
// domain error is recoverable at this boundary; anything unrecognised is a
// 500 and the detail stays in the logs.
func respondError(c *gin.Context, err error) {
	switch {
	case models.IsValidation(err):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
	case models.IsAttribution(err):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(err.Error()))
	case models.IsNotFound(err):
		c.JSON(http.StatusNotFound, models.ErrorResponse(err.Error()))
	case models.IsInvalidTransition(err):
		c.JSON(http.StatusConflict, models.ErrorResponse(err.Error()))
	case models.IsUnauthorized(err):
		c.JSON(http.StatusForbidden, models.ErrorResponse(err.Error()))
	case models.IsConflict(err):
		c.JSON(http.StatusConflict, models.ErrorResponse(err.Error()))
	default:
		// Unrecognised errors go to the centralized handler, which logs the
		// detail and answers with a 500.
		_ = c.Error(err)
	}
}
