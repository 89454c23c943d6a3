package handlers

import (
	"errors"
	"net/http"

	"food-vendor-api/services"

	"github.com/gin-gonic/gin"
)

// Service dependencies wired at startup
var (
	Lifecycle services.OrderLifecycleAPI
	Offers    services.OfferResolverAPI
)

// Setup injects the core services the handlers delegate to
func Setup(lifecycle services.OrderLifecycleAPI, offers services.OfferResolverAPI) {
	Lifecycle = lifecycle
	Offers = offers
}

// respondServiceError maps core error kinds to transport status codes
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrOfferNotFound),
		errors.Is(err, services.ErrVendorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrIllegalTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrVendorNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
