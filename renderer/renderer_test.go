package renderer

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/vendora-commerce/vendora-storefront-backend/models"
)

func baseContext() *Context {
	return &Context{
		ViewMode:       ViewDesktop,
		Store:          models.Store{Name: "Demo Store"},
		ProductsLoaded: true,
	}
}

func block(t models.BlockType, order int, content datatypes.JSONMap) models.Block {
	return models.Block{
		ID:      models.NewBlockID(),
		Type:    t,
		Order:   order,
		Content: content,
	}
}

func TestRenderPageFollowsOrderNotInsertion(t *testing.T) {
	tmpl := &models.Template{Pages: models.PagesMap{}}
	tmpl.EnsurePage("home")
	tmpl.Pages["home"] = []models.Block{
		{ID: "b", Type: models.BlockFAQ, Order: 2},
		{ID: "a", Type: models.BlockHero, Order: 1, Content: datatypes.JSONMap{"title": "First"}},
		{ID: "c", Type: models.BlockFooter, Order: 3},
	}

	html := RenderPage(tmpl, "home", baseContext())
	hero := strings.Index(html, `data-block-type="hero"`)
	faq := strings.Index(html, `data-block-type="faq"`)
	footer := strings.Index(html, `data-block-type="footer"`)
	if hero < 0 || faq < 0 || footer < 0 {
		t.Fatalf("missing blocks in output: %s", html)
	}
	if !(hero < faq && faq < footer) {
		t.Fatal("blocks not rendered in ascending order")
	}
}

func TestRenderPageStableWhenOrdersCollide(t *testing.T) {
	tmpl := &models.Template{Pages: models.PagesMap{}}
	tmpl.Pages["home"] = []models.Block{
		{ID: "z-later", Type: models.BlockFAQ, Order: 0},
		{ID: "a-early", Type: models.BlockHero, Order: 0},
	}

	first := RenderPage(tmpl, "home", baseContext())
	second := RenderPage(tmpl, "home", baseContext())
	if first != second {
		t.Fatal("expected deterministic output for colliding orders")
	}
	if strings.Index(first, `"a-early"`) > strings.Index(first, `"z-later"`) {
		t.Fatal("id tiebreak not applied")
	}
}

func TestRenderPageEmptyPage(t *testing.T) {
	tmpl := &models.Template{Pages: models.PagesMap{}}
	tmpl.EnsurePage("about")

	html := RenderPage(tmpl, "about", baseContext())
	if !strings.Contains(html, "empty-state") {
		t.Fatalf("expected empty state, got %s", html)
	}
}

func TestUnknownTypeFallsBackToPlaceholder(t *testing.T) {
	b := models.Block{ID: "x", Type: models.BlockType("carousel-3000"), Order: 0}
	html := Render(b, baseContext())
	if !strings.Contains(html, "block-placeholder") {
		t.Fatalf("expected placeholder for unknown type, got %s", html)
	}
}

func TestStyleDefaultsApplied(t *testing.T) {
	b := block(models.BlockHero, 0, nil)
	html := Render(b, baseContext())
	if !strings.Contains(html, "background-color:#ffffff") {
		t.Fatalf("expected default white background, got %s", html)
	}
	if !strings.Contains(html, "color:#000000") {
		t.Fatal("expected default black text")
	}
}

func TestStyleOverridesApplied(t *testing.T) {
	b := block(models.BlockHero, 0, nil)
	b.Styles = models.BlockStyles{BackgroundColor: "#123456", TextColor: "#abcdef", Padding: "8px", Margin: "4px"}
	html := Render(b, baseContext())
	for _, want := range []string{"background-color:#123456", "color:#abcdef", "padding:8px", "margin:4px"} {
		if !strings.Contains(html, want) {
			t.Fatalf("missing %s in %s", want, html)
		}
	}
}

func TestViewModeGridColumns(t *testing.T) {
	content := datatypes.JSONMap{"title": "Why us", "items": []interface{}{
		map[string]interface{}{"title": "Fast", "description": "Quick shipping"},
	}}
	b := block(models.BlockFeatures, 0, content)

	cases := []struct {
		mode ViewMode
		want string
	}{
		{ViewDesktop, "repeat(3, 1fr)"},
		{ViewTablet, "repeat(2, 1fr)"},
		{ViewMobile, "repeat(1, 1fr)"},
	}
	for _, tc := range cases {
		ctx := baseContext()
		ctx.ViewMode = tc.mode
		html := Render(b, ctx)
		if !strings.Contains(html, tc.want) {
			t.Fatalf("mode %s: expected %s in %s", tc.mode, tc.want, html)
		}
	}
}

func TestTestimonialsFixtureInEditingMode(t *testing.T) {
	b := block(models.BlockTestimonials, 0, datatypes.JSONMap{
		"items": []interface{}{map[string]interface{}{"author": "Real Reviewer", "quote": "Live quote"}},
	})

	ctx := baseContext()
	ctx.IsEditing = true
	html := Render(b, ctx)
	if strings.Contains(html, "Real Reviewer") {
		t.Fatal("editing mode must not show live review data")
	}
	if !strings.Contains(html, "Alex P.") {
		t.Fatal("editing mode should show fixture testimonials")
	}

	ctx.IsEditing = false
	html = Render(b, ctx)
	if !strings.Contains(html, "Real Reviewer") {
		t.Fatal("public render should show live review data")
	}
}

func TestProductsLoadingAndErrorStates(t *testing.T) {
	b := block(models.BlockProducts, 0, nil)

	ctx := baseContext()
	ctx.ProductsLoaded = false
	if html := Render(b, ctx); !strings.Contains(html, "loading-state") {
		t.Fatalf("expected loading state, got %s", html)
	}

	ctx = baseContext()
	ctx.ProductsErr = errors.New("connection refused")
	if html := Render(b, ctx); !strings.Contains(html, "error-state") {
		t.Fatalf("expected error state, got %s", html)
	}

	ctx = baseContext()
	if html := Render(b, ctx); !strings.Contains(html, "empty-state") {
		t.Fatalf("expected empty catalog state, got %s", html)
	}
}

func newTestCatalog() ([]models.Product, map[string][]models.Variant) {
	price := func(v float64) *float64 { return &v }
	stock := func(v int) *int { return &v }

	p1 := models.Product{ID: uuid.New(), Name: "Alpha Jacket", Price: 80, InventoryQty: 5, Images: models.ImageList{"alpha.jpg"}}
	p2 := models.Product{ID: uuid.New(), Name: "Beta Scarf", Price: 15, InventoryQty: 2, Images: models.ImageList{"beta.jpg"}}

	vs := map[string][]models.Variant{
		p1.ID.String(): {
			{ID: uuid.New(), ProductID: p1.ID, Attributes: models.AttributeSet{"color": "red"}, Price: price(90), InventoryQty: stock(1), Images: models.ImageList{"alpha-red.jpg"}},
			{ID: uuid.New(), ProductID: p1.ID, Attributes: models.AttributeSet{"color": "blue"}, Price: price(85), InventoryQty: stock(0)},
		},
	}
	return []models.Product{p1, p2}, vs
}

func TestProductDetailExplicitAndFallbackSelection(t *testing.T) {
	products, vs := newTestCatalog()
	b := block(models.BlockProductDetail, 0, nil)

	ctx := baseContext()
	ctx.Products = products
	ctx.VariantsOf = vs
	ctx.ProductID = products[1].ID.String()
	html := Render(b, ctx)
	if !strings.Contains(html, "Beta Scarf") {
		t.Fatalf("expected explicit product, got %s", html)
	}

	// unknown id falls back to the first product rather than erroring
	ctx.ProductID = uuid.NewString()
	html = Render(b, ctx)
	if !strings.Contains(html, "Alpha Jacket") {
		t.Fatalf("expected first-product fallback, got %s", html)
	}
}

func TestProductDetailVariantSelectionDrivesPriceStockImages(t *testing.T) {
	products, vs := newTestCatalog()
	b := block(models.BlockProductDetail, 0, nil)

	ctx := baseContext()
	ctx.Products = products
	ctx.VariantsOf = vs
	ctx.ProductID = products[0].ID.String()

	ctx.Selection = models.AttributeSet{"color": "red"}
	html := Render(b, ctx)
	if !strings.Contains(html, "$90.00") {
		t.Fatalf("expected red variant price, got %s", html)
	}
	if !strings.Contains(html, "alpha-red.jpg") {
		t.Fatal("expected variant image set in gallery")
	}
	if !strings.Contains(html, "In stock") {
		t.Fatal("red variant has stock 1")
	}

	ctx.Selection = models.AttributeSet{"color": "blue"}
	html = Render(b, ctx)
	if !strings.Contains(html, "$85.00") {
		t.Fatalf("expected blue variant price, got %s", html)
	}
	if !strings.Contains(html, "alpha.jpg") {
		t.Fatal("blue variant has no images, expected product image fallback")
	}
	if !strings.Contains(html, "Out of stock") {
		t.Fatal("blue variant has stock 0")
	}

	// unknown value: base product data, never an error
	ctx.Selection = models.AttributeSet{"color": "green"}
	html = Render(b, ctx)
	if !strings.Contains(html, "$80.00") {
		t.Fatalf("expected base price fallback, got %s", html)
	}
}

func TestCartBlockRendersLinesAndEmptyState(t *testing.T) {
	b := block(models.BlockCart, 0, nil)

	ctx := baseContext()
	html := Render(b, ctx)
	if !strings.Contains(html, "Your cart is empty") {
		t.Fatalf("expected empty cart message, got %s", html)
	}

	ctx.CartLines = []CartLineView{{Name: "Alpha Jacket", Price: 80, Quantity: 2}}
	ctx.CartTotal = 160
	ctx.CartCount = 2
	html = Render(b, ctx)
	if !strings.Contains(html, "Alpha Jacket") || !strings.Contains(html, "$160.00") {
		t.Fatalf("expected line and total, got %s", html)
	}
}

func TestCheckoutDisabledInEditor(t *testing.T) {
	b := block(models.BlockCheckout, 0, nil)
	ctx := baseContext()
	ctx.CartLines = []CartLineView{{Name: "X", Price: 1, Quantity: 1}}
	ctx.CartTotal = 1
	ctx.CartCount = 1
	ctx.IsEditing = true

	html := Render(b, ctx)
	if !strings.Contains(html, "disabled") {
		t.Fatal("checkout submit must be disabled on the builder canvas")
	}
}

func TestContentEscaping(t *testing.T) {
	b := block(models.BlockHero, 0, datatypes.JSONMap{"title": `<script>alert("x")</script>`})
	html := Render(b, baseContext())
	if strings.Contains(html, "<script>") {
		t.Fatal("content must be HTML-escaped")
	}
}

func TestEveryBlockTypeRenders(t *testing.T) {
	products, vs := newTestCatalog()
	for _, bt := range models.AllBlockTypes {
		ctx := baseContext()
		ctx.Products = products
		ctx.VariantsOf = vs
		html := Render(block(bt, 0, nil), ctx)
		if !strings.Contains(html, string(bt)) {
			t.Fatalf("type %s: missing data-block-type in %s", bt, html)
		}
	}
}
