package handlers

import (
	"errors"
	"net/http"

	"coffeeshop/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP status codes.
// Internal failure detail never reaches the client; the cause is already
// logged at the service boundary.
func respondError(c *gin.Context, err error) {
	var notFound *services.NotFoundError
	var validation *services.ValidationError
	var unauthorized *services.UnauthorizedError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Detail})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Detail})
	case errors.As(err, &unauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": unauthorized.Detail})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
