package template_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendora-commerce/vendora-storefront-backend/models"
)

// GetTemplate returns the store's full site template for the builder UI.
func GetTemplate(c *gin.Context) {
	storeID, ok := parseStoreID(c)
	if !ok {
		return
	}

	template, ok := loadTemplate(c, storeID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Template fetched successfully", template))
}
