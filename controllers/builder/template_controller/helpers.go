package template_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vendora-commerce/vendora-storefront-backend/cache"
	"github.com/vendora-commerce/vendora-storefront-backend/config"
	"github.com/vendora-commerce/vendora-storefront-backend/models"
)

// parseStoreID validates the :storeId path param. Responds and returns false
// on failure so handlers can bail with a bare return.
func parseStoreID(c *gin.Context) (uuid.UUID, bool) {
	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid store ID"))
		return uuid.Nil, false
	}
	return storeID, true
}

// loadTemplate fetches the store's template, creating a blank one on first
// access so the builder always has something to edit.
func loadTemplate(c *gin.Context, storeID uuid.UUID) (*models.Template, bool) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var template models.Template
	err := config.DB.WithContext(ctx).
		Where("store_id = ?", storeID).
		First(&template).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		template = models.Template{
			StoreID: storeID,
			Name:    "Untitled site",
			Pages:   models.PagesMap{"home": {}},
		}
		if err := config.DB.WithContext(ctx).Create(&template).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create template"))
			return nil, false
		}
		return &template, true
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load template"))
		return nil, false
	}
	return &template, true
}

// saveTemplate persists the mutated template and drops the store's cached
// published copy so the live storefront picks up the change.
func saveTemplate(c *gin.Context, template *models.Template) bool {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).Save(template).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save template"))
		return false
	}
	template_cache.Invalidate(template.StoreID.String())
	return true
}
