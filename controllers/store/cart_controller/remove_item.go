package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendora-commerce/vendora-storefront-backend/models"
)

// RemoveItem drops one line from the cart.
func RemoveItem(c *gin.Context) {
	crt, ok := sessionCart(c)
	if !ok {
		return
	}

	var req models.RemoveCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	crt.RemoveItem(req.ProductID, req.VariantID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", cartPayload(crt)))
}

// ClearCart empties the cart in one call. Safe to repeat.
func ClearCart(c *gin.Context) {
	crt, ok := sessionCart(c)
	if !ok {
		return
	}

	crt.Clear()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", cartPayload(crt)))
}
