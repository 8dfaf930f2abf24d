package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendora-commerce/vendora-storefront-backend/models"
)

// UpdateItem sets the absolute quantity of a cart line. Zero or negative
// removes the line.
func UpdateItem(c *gin.Context) {
	crt, ok := sessionCart(c)
	if !ok {
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	crt.UpdateQuantity(req.ProductID, req.Quantity, req.VariantID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", cartPayload(crt)))
}
