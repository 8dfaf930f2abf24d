package cart_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vendora-commerce/vendora-storefront-backend/config"
	"github.com/vendora-commerce/vendora-storefront-backend/models"
)

// AddItem puts a product (optionally a specific variant) into the session
// cart. The line freezes the price current at this moment; later catalog
// edits do not touch lines already in the cart.
func AddItem(c *gin.Context) {
	crt, ok := sessionCart(c)
	if !ok {
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	err = config.DB.WithContext(ctx).
		Where("id = ? AND store_id = ? AND status = ?", productID, crt.StoreID(), "Active").
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	var variant *models.Variant
	if req.VariantID != "" {
		variantID, err := uuid.Parse(req.VariantID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid variant ID"))
			return
		}
		var v models.Variant
		err = config.DB.WithContext(ctx).
			Where("id = ? AND product_id = ?", variantID, productID).
			First(&v).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Variant not found"))
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch variant"))
			return
		}
		variant = &v
	}

	crt.AddItem(product, variant, req.Quantity)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to cart", cartPayload(crt)))
}
