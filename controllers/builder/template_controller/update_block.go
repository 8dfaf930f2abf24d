package template_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendora-commerce/vendora-storefront-backend/models"
)

// UpdateBlock mutates an existing block's content, styles or order. The
// block's type is fixed at creation; requests that try to change it fail.
func UpdateBlock(c *gin.Context) {
	storeID, ok := parseStoreID(c)
	if !ok {
		return
	}
	page := c.Param("page")
	blockID := c.Param("blockId")

	var req models.UpdateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	template, ok := loadTemplate(c, storeID)
	if !ok {
		return
	}

	blocks, pageExists := template.Pages[page]
	if !pageExists {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Page not found"))
		return
	}

	var current *models.Block
	for i := range blocks {
		if blocks[i].ID == blockID {
			current = &blocks[i]
			break
		}
	}
	if current == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Block not found"))
		return
	}

	updated := *current
	if req.Content != nil {
		updated.Content = *req.Content
	}
	if req.Styles != nil {
		updated.Styles = *req.Styles
	}
	if req.Order != nil {
		updated.Order = *req.Order
	}

	block, err := template.UpdateBlock(page, updated)
	if err != nil {
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

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Block updated successfully", block))
}
