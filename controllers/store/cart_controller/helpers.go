package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vendora-commerce/vendora-storefront-backend/cart"
	"github.com/vendora-commerce/vendora-storefront-backend/models"
	"github.com/vendora-commerce/vendora-storefront-backend/services"
)

// sessionCart resolves the caller's cart for the store in the path. A cart
// carried over from another store is cleared by the registry on rebind.
func sessionCart(c *gin.Context) (*cart.Cart, bool) {
	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid store ID"))
		return nil, false
	}
	return services.CartSessions.Get(services.SessionID(c), storeID.String()), true
}

// cartPayload is the response shape every cart mutation returns.
func cartPayload(crt *cart.Cart) gin.H {
	return gin.H{
		"store_id":    crt.StoreID(),
		"lines":       crt.Lines(),
		"total_items": crt.TotalItems(),
		"total_price": crt.TotalPrice(),
	}
}
