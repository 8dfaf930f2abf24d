package product_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vendora-commerce/vendora-storefront-backend/config"
	"github.com/vendora-commerce/vendora-storefront-backend/models"
)

// GetStorefrontProducts lists a store's active products for the public
// storefront. Reads go through the pgx pool; this is the hottest query in
// the system and skips the ORM.
func GetStorefrontProducts(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid store ID"))
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	rows, err := config.Pool.Query(ctx, `
		SELECT id, name, description, price, compare_price, images,
		       inventory_qty, sku, status
		FROM products
		WHERE store_id = $1 AND status = 'Active'
		ORDER BY created_at DESC
		LIMIT $2
	`, storeID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}
	defer rows.Close()

	products := make([]models.Product, 0, limit)
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.ComparePrice,
			&p.Images, &p.InventoryQty, &p.SKU, &p.Status,
		); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read products"))
			return
		}
		p.StoreID = storeID
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", products))
}
