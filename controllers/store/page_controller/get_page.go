package page_controller

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vendora-commerce/vendora-storefront-backend/cache"
	"github.com/vendora-commerce/vendora-storefront-backend/cart"
	"github.com/vendora-commerce/vendora-storefront-backend/config"
	"github.com/vendora-commerce/vendora-storefront-backend/models"
	"github.com/vendora-commerce/vendora-storefront-backend/renderer"
	"github.com/vendora-commerce/vendora-storefront-backend/services"
	"github.com/vendora-commerce/vendora-storefront-backend/shell"
)

// guards tracks one fetch guard per cart session. Overlapping page requests
// from the same session (rapid product hopping) resolve to the newest one;
// older in-flight renders are answered with a redirect to the listing.
var (
	guardMu sync.Mutex
	guards  = make(map[string]*shell.FetchGuard)
)

func guardFor(sessionID string) *shell.FetchGuard {
	guardMu.Lock()
	defer guardMu.Unlock()
	g, ok := guards[sessionID]
	if !ok {
		g = &shell.FetchGuard{}
		guards[sessionID] = g
	}
	return g
}

// GetPage renders one storefront page of the store's published template as
// an HTML fragment. Navigation state comes entirely from the URL query
// (?page=&product=), so browser back/forward just re-enter here.
func GetPage(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid store ID"))
		return
	}

	template, ok := publishedTemplate(c, storeID)
	if !ok {
		return
	}

	state := shell.FromQuery(c.Request.URL.Query())

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var store models.Store
	if err := config.DB.WithContext(ctx).First(&store, "id = ?", storeID).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Store not found"))
		return
	}

	sessionID := services.SessionID(c)
	crt := services.CartSessions.Get(sessionID, storeID.String())

	var accept func() bool
	if state.CurrentPage == shell.PageProductDetail {
		accept = guardFor(sessionID).Begin(state.SelectedProductID)
	}

	var products []models.Product
	variantsOf := make(map[string][]models.Variant)
	err = config.DB.WithContext(ctx).
		Preload("Variants").
		Where("store_id = ? AND status = ?", storeID, "Active").
		Order("created_at DESC").
		Find(&products).Error
	loaded := err == nil
	for _, p := range products {
		variantsOf[p.ID.String()] = p.Variants
	}

	// A stale product id in the URL (deleted product, dead bookmark) or a
	// superseded fetch both recover the same way: back to the listing.
	if state.CurrentPage == shell.PageProductDetail {
		if !accept() || (loaded && !productExists(products, state.SelectedProductID)) {
			state.RedirectToListing()
			c.JSON(http.StatusOK, models.RedirectResponse(c, "Product no longer available", state.CurrentPage))
			return
		}
	}

	renderCtx := &renderer.Context{
		ViewMode:       renderer.ParseViewMode(c.Query("view")),
		Store:          store,
		Styles:         template.Styles(),
		ProductID:      state.SelectedProductID,
		Selection:      selectionFromQuery(c),
		Products:       products,
		VariantsOf:     variantsOf,
		ProductsLoaded: loaded,
		ProductsErr:    err,
		CartCount:      crt.TotalItems(),
		CartLines:      cartLineViews(crt),
		CartTotal:      crt.TotalPrice(),
	}

	html := renderer.RenderPage(template, state.CurrentPage, renderCtx)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Page rendered successfully", gin.H{
		"page":  state.CurrentPage,
		"query": state.Query().Encode(),
		"html":  html,
	}))
}

// publishedTemplate serves the live template, cache first.
func publishedTemplate(c *gin.Context, storeID uuid.UUID) (*models.Template, bool) {
	if tpl, ok := template_cache.Get(storeID.String()); ok {
		return tpl, true
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var tpl models.Template
	err := config.DB.WithContext(ctx).
		Where("store_id = ? AND is_published = ?", storeID, true).
		First(&tpl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Store has no published site"))
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load template"))
		return nil, false
	}

	template_cache.Set(storeID.String(), &tpl)
	return &tpl, true
}

// selectionFromQuery reads attr.<name>=<value> pairs, the product detail
// page's variant picker state.
func selectionFromQuery(c *gin.Context) models.AttributeSet {
	selection := make(models.AttributeSet)
	for key, values := range c.Request.URL.Query() {
		if len(key) > 5 && key[:5] == "attr." && len(values) > 0 {
			selection[key[5:]] = values[0]
		}
	}
	if len(selection) == 0 {
		return nil
	}
	return selection
}

func productExists(products []models.Product, id string) bool {
	if id == "" {
		return len(products) > 0
	}
	for _, p := range products {
		if p.ID.String() == id {
			return true
		}
	}
	return false
}

func cartLineViews(crt *cart.Cart) []renderer.CartLineView {
	lines := crt.Lines()
	views := make([]renderer.CartLineView, 0, len(lines))
	for _, l := range lines {
		views = append(views, renderer.CartLineView{
			Name:     l.Name,
			Price:    l.Price,
			Quantity: l.Quantity,
			Image:    l.Image,
		})
	}
	return views
}
