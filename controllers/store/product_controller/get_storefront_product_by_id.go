package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vendora-commerce/vendora-storefront-backend/config"
	"github.com/vendora-commerce/vendora-storefront-backend/models"
)

// GetStorefrontProductByID returns one active product with its variants for
// the product detail page.
func GetStorefrontProductByID(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid store ID"))
		return
	}
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var p models.Product
	err = config.Pool.QueryRow(ctx, `
		SELECT id, name, description, price, compare_price, images,
		       inventory_qty, sku, status
		FROM products
		WHERE id = $1 AND store_id = $2 AND status = 'Active'
	`, productID, storeID).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.ComparePrice,
		&p.Images, &p.InventoryQty, &p.SKU, &p.Status,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}
	p.StoreID = storeID

	rows, err := config.Pool.Query(ctx, `
		SELECT id, product_id, attributes, price, compare_price, cost,
		       inventory_qty, weight, images
		FROM product_variants
		WHERE product_id = $1
	`, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch variants"))
		return
	}
	defer rows.Close()

	for rows.Next() {
		var v models.Variant
		if err := rows.Scan(
			&v.ID, &v.ProductID, &v.Attributes, &v.Price, &v.ComparePrice,
			&v.Cost, &v.InventoryQty, &v.Weight, &v.Images,
		); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read variants"))
			return
		}
		p.Variants = append(p.Variants, v)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read variants"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", p))
}
