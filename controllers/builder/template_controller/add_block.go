package template_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendora-commerce/vendora-storefront-backend/models"
)

// AddBlock appends a new block to the named page. The server assigns the
// block id; the client's id, if any, is ignored.
func AddBlock(c *gin.Context) {
	storeID, ok := parseStoreID(c)
	if !ok {
		return
	}
	page := c.Param("page")

	var req models.AddBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	template, ok := loadTemplate(c, storeID)
	if !ok {
		return
	}

	block, err := template.AddBlock(page, models.Block{
		Type:    req.Type,
		Content: req.Content,
		Styles:  req.Styles,
		Order:   req.Order,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	if !saveTemplate(c, template) {
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Block added successfully", block))
}
