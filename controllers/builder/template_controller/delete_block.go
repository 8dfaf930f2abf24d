package template_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendora-commerce/vendora-storefront-backend/models"
)

// DeleteBlock removes a block from the named page.
func DeleteBlock(c *gin.Context) {
	storeID, ok := parseStoreID(c)
	if !ok {
		return
	}
	page := c.Param("page")
	blockID := c.Param("blockId")

	template, ok := loadTemplate(c, storeID)
	if !ok {
		return
	}

	if err := template.DeleteBlock(page, blockID); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, models.ErrBlockNotFound) || errors.Is(err, models.ErrPageNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, models.ErrorResponse(c, err.Error()))
		return
	}

	if !saveTemplate(c, template) {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Block deleted successfully", gin.H{
		"block_id": blockID,
	}))
}
