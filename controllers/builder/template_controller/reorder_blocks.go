package template_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendora-commerce/vendora-storefront-backend/models"
)

// ReorderBlocks swaps the positions of two blocks on a page, then renumbers
// the page so block order stays dense. Used by the builder's drag-and-drop.
func ReorderBlocks(c *gin.Context) {
	storeID, ok := parseStoreID(c)
	if !ok {
		return
	}
	page := c.Param("page")

	var req models.ReorderBlocksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	template, ok := loadTemplate(c, storeID)
	if !ok {
		return
	}

	if err := template.ReorderBlocks(page, req.DraggedID, req.TargetID); err != nil {
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

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Blocks reordered successfully", gin.H{
		"page":   page,
		"blocks": template.SortedBlocks(page),
	}))
}
