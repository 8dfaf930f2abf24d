package checkout_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vendora-commerce/vendora-storefront-backend/config"
	"github.com/vendora-commerce/vendora-storefront-backend/models"
	"github.com/vendora-commerce/vendora-storefront-backend/services"
)

// Checkout freezes the session cart into an order. On success the cart is
// emptied and the client receives the order reference.
func Checkout(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid store ID"))
		return
	}

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	crt := services.CartSessions.Get(services.SessionID(c), storeID.String())

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := services.NewOrderService().CreateOrder(ctx, storeID, crt, req)
	if errors.Is(err, services.ErrEmptyCart) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cannot check out an empty cart"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to place order"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order placed successfully", models.CheckoutResponse{
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		TotalAmount: order.TotalAmount,
	}))
}
