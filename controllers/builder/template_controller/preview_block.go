package template_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/vendora-commerce/vendora-storefront-backend/config"
	"github.com/vendora-commerce/vendora-storefront-backend/models"
	"github.com/vendora-commerce/vendora-storefront-backend/renderer"
)

type previewBlockRequest struct {
	Type    models.BlockType   `json:"type" binding:"required"`
	Content datatypes.JSONMap  `json:"content"`
	Styles  models.BlockStyles `json:"styles"`
}

// PreviewBlock renders a single block in editing mode without persisting
// anything. The builder calls this while the merchant tweaks block settings.
func PreviewBlock(c *gin.Context) {
	storeID, ok := parseStoreID(c)
	if !ok {
		return
	}

	var req previewBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}
	if !req.Type.Valid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown block type: "+string(req.Type)))
		return
	}

	template, ok := loadTemplate(c, storeID)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Product-backed blocks preview against the store's real catalog.
	var products []models.Product
	variantsOf := make(map[string][]models.Variant)
	err := config.DB.WithContext(ctx).
		Preload("Variants").
		Where("store_id = ? AND status = ?", storeID, "Active").
		Order("created_at DESC").
		Find(&products).Error
	loaded := err == nil
	for _, p := range products {
		variantsOf[p.ID.String()] = p.Variants
	}

	renderCtx := &renderer.Context{
		IsEditing:      true,
		ViewMode:       renderer.ParseViewMode(c.Query("view")),
		Styles:         template.Styles(),
		Products:       products,
		VariantsOf:     variantsOf,
		ProductsLoaded: loaded,
		ProductsErr:    err,
	}

	block := models.Block{
		ID:      models.NewBlockID(),
		Type:    req.Type,
		Content: req.Content,
		Styles:  req.Styles,
	}

	html := renderer.Render(block, renderCtx)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Block preview rendered", gin.H{
		"html": html,
	}))
}
