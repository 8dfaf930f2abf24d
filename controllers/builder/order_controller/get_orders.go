package order_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vendora-commerce/vendora-storefront-backend/config"
	"github.com/vendora-commerce/vendora-storefront-backend/models"
	"github.com/vendora-commerce/vendora-storefront-backend/services"
)

// GetStoreOrders lists a store's orders for the merchant dashboard, newest
// first. This is where the preview's orders navigation lands.
func GetStoreOrders(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid store ID"))
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 200 {
			limit = parsed
		}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders, err := services.NewOrderService().GetOrdersByStore(ctx, storeID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders fetched successfully", orders))
}
