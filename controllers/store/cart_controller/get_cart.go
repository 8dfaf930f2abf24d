package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendora-commerce/vendora-storefront-backend/models"
)

// GetCart returns the session's current cart contents.
func GetCart(c *gin.Context) {
	crt, ok := sessionCart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", cartPayload(crt)))
}
