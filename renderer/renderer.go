// Package renderer turns storefront blocks into HTML fragments. The same
// dispatch runs in the builder canvas, the live-preview dialog, and the
// public storefront; only the context flags differ.
package renderer

import (
	"fmt"
	"html"
	"strings"

	"github.com/vendora-commerce/vendora-storefront-backend/models"
	"github.com/vendora-commerce/vendora-storefront-backend/variants"
)

// ViewMode simulates the viewport the page is rendered for.
type ViewMode string

const (
	ViewDesktop ViewMode = "desktop"
	ViewTablet  ViewMode = "tablet"
	ViewMobile  ViewMode = "mobile"
)

// ParseViewMode maps a query value to a ViewMode, defaulting to desktop.
func ParseViewMode(raw string) ViewMode {
	switch ViewMode(raw) {
	case ViewTablet:
		return ViewTablet
	case ViewMobile:
		return ViewMobile
	default:
		return ViewDesktop
	}
}

// Context carries everything a strategy may need. Product data is a
// snapshot fetched by the caller; strategies never reach back to storage.
type Context struct {
	IsEditing bool
	ViewMode  ViewMode

	Store  models.Store
	Styles models.TemplateStyles

	// ProductID selects the product for the product-detail strategy; when
	// empty or not found the first available product is shown instead.
	ProductID string

	// Selection is the shopper's in-page attribute selection, fed to the
	// variant resolver on product-detail renders.
	Selection models.AttributeSet

	Products       []models.Product
	VariantsOf     map[string][]models.Variant
	ProductsLoaded bool
	ProductsErr    error

	CartCount int
	CartLines []CartLineView
	CartTotal float64
}

// CartLineView is the render-facing projection of one cart line.
type CartLineView struct {
	Name     string
	Price    float64
	Quantity int
	Image    string
}

type strategy func(b models.Block, ctx *Context, w *strings.Builder)

// dispatch is a pure function of block type. Types missing from the table
// fall through to the default placeholder strategy.
var dispatch = map[models.BlockType]strategy{
	models.BlockHero:          renderHero,
	models.BlockProducts:      renderProducts,
	models.BlockProductDetail: renderProductDetail,
	models.BlockTextImage:     renderTextImage,
	models.BlockTextVideo:     renderTextVideo,
	models.BlockContact:       renderContact,
	models.BlockGallery:       renderGallery,
	models.BlockVideo:         renderVideo,
	models.BlockFooter:        renderFooter,
	models.BlockFeatures:      renderFeatures,
	models.BlockTestimonials:  renderTestimonials,
	models.BlockFAQ:           renderFAQ,
	models.BlockBeforeAfter:   renderBeforeAfter,
	models.BlockComparison:    renderComparison,
	models.BlockCart:          renderCart,
	models.BlockCheckout:      renderCheckout,
	models.BlockGuarantees:    renderGuarantees,
	models.BlockDefault:       renderDefaultBlock,
}

// Render produces the HTML fragment for one block.
func Render(b models.Block, ctx *Context) string {
	fn, ok := dispatch[b.Type]
	if !ok {
		fn = renderDefaultBlock
	}
	var w strings.Builder
	openSection(&w, b, ctx)
	fn(b, ctx, &w)
	closeSection(&w)
	return w.String()
}

// RenderPage sorts blocks by display order (stable, id tiebreak) and
// concatenates their fragments. Insertion order never leaks into output.
func RenderPage(t *models.Template, page string, ctx *Context) string {
	blocks := t.SortedBlocks(page)
	if len(blocks) == 0 {
		return emptyState("This page has no content yet")
	}
	var w strings.Builder
	for _, b := range blocks {
		w.WriteString(Render(b, ctx))
	}
	return w.String()
}

// ═══════════════════════════════════════════════════════════
// Styles
// ═══════════════════════════════════════════════════════════

const (
	defaultBackground = "#ffffff"
	defaultTextColor  = "#000000"
	defaultPadding    = "48px 24px"
	defaultMargin     = "0"
)

// styleAttr builds the inline style for a block wrapper, falling back to
// white background and black text when the builder left fields empty.
func styleAttr(s models.BlockStyles) string {
	bg := s.BackgroundColor
	if bg == "" {
		bg = defaultBackground
	}
	color := s.TextColor
	if color == "" {
		color = defaultTextColor
	}
	padding := s.Padding
	if padding == "" {
		padding = defaultPadding
	}
	margin := s.Margin
	if margin == "" {
		margin = defaultMargin
	}
	return fmt.Sprintf("background-color:%s;color:%s;padding:%s;margin:%s",
		esc(bg), esc(color), esc(padding), esc(margin))
}

func openSection(w *strings.Builder, b models.Block, ctx *Context) {
	fmt.Fprintf(w, `<section data-block-id="%s" data-block-type="%s" data-view="%s" style="%s">`,
		esc(b.ID), esc(string(b.Type)), string(ctx.ViewMode), styleAttr(b.Styles))
}

func closeSection(w *strings.Builder) {
	w.WriteString("</section>")
}

// ═══════════════════════════════════════════════════════════
// Responsive tiers
// ═══════════════════════════════════════════════════════════

// gridColumns picks the product/feature grid width per viewport tier.
func gridColumns(mode ViewMode) int {
	switch mode {
	case ViewMobile:
		return 1
	case ViewTablet:
		return 2
	default:
		return 3
	}
}

// headingSize picks the heading scale per viewport tier.
func headingSize(mode ViewMode) string {
	switch mode {
	case ViewMobile:
		return "24px"
	case ViewTablet:
		return "32px"
	default:
		return "40px"
	}
}

func bodySize(mode ViewMode) string {
	if mode == ViewMobile {
		return "14px"
	}
	return "16px"
}

// ═══════════════════════════════════════════════════════════
// Shared fragments
// ═══════════════════════════════════════════════════════════

func esc(s string) string {
	return html.EscapeString(s)
}

func heading(w *strings.Builder, ctx *Context, text string) {
	if text == "" {
		return
	}
	fmt.Fprintf(w, `<h2 style="font-size:%s">%s</h2>`, headingSize(ctx.ViewMode), esc(text))
}

func emptyState(label string) string {
	return fmt.Sprintf(`<div class="empty-state">%s</div>`, esc(label))
}

func loadingState(label string) string {
	return fmt.Sprintf(`<div class="loading-state">%s</div>`, esc(label))
}

func errorState(label string) string {
	return fmt.Sprintf(`<div class="error-state">%s <button data-action="retry">Retry</button></div>`, esc(label))
}

func formatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// resolverFor builds a variant resolver over the context's snapshot for one
// product, pre-applying the in-page selection.
func resolverFor(ctx *Context, p models.Product) *variants.Resolver {
	r := variants.NewResolver(p, ctx.VariantsOf[p.ID.String()])
	for attrType, valueID := range ctx.Selection {
		r.SelectAttribute(attrType, valueID)
	}
	return r
}

// pickProduct selects the product a product block should show: the explicit
// id when present and known, else the first available product.
func pickProduct(ctx *Context) (models.Product, bool) {
	if len(ctx.Products) == 0 {
		return models.Product{}, false
	}
	if ctx.ProductID != "" {
		for _, p := range ctx.Products {
			if p.ID.String() == ctx.ProductID {
				return p, true
			}
		}
	}
	return ctx.Products[0], true
}
