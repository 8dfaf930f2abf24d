package template_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendora-commerce/vendora-storefront-backend/models"
)

// SaveTemplate applies a partial update to the store's template. Only fields
// present in the request body change; pages replace wholesale when sent.
func SaveTemplate(c *gin.Context) {
	storeID, ok := parseStoreID(c)
	if !ok {
		return
	}

	var req models.SaveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	template, ok := loadTemplate(c, storeID)
	if !ok {
		return
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Description != nil {
		template.Description = *req.Description
	}
	if req.PrimaryColor != nil {
		template.PrimaryColor = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		template.SecondaryColor = *req.SecondaryColor
	}
	if req.FontFamily != nil {
		template.FontFamily = *req.FontFamily
	}
	if req.Pages != nil {
		for page, blocks := range *req.Pages {
			for _, b := range blocks {
				if !b.Type.Valid() {
					c.JSON(http.StatusBadRequest, models.ErrorResponse(c,
						"Unknown block type on page "+page+": "+string(b.Type)))
					return
				}
			}
		}
		template.Pages = *req.Pages
	}
	if req.IsPublished != nil {
		template.IsPublished = *req.IsPublished
	}

	if !saveTemplate(c, template) {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Template saved successfully", template))
}
