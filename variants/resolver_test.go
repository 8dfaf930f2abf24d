package variants

import (
	"testing"

	"github.com/google/uuid"
	"github.com/vendora-commerce/vendora-storefront-backend/models"
)

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }

func testProduct() (models.Product, []models.Variant) {
	product := models.Product{
		ID:           uuid.New(),
		Name:         "Hoodie",
		Price:        25,
		InventoryQty: 7,
		Images:       models.ImageList{"base-front.jpg", "base-back.jpg"},
	}
	productVariants := []models.Variant{
		{
			ID:           uuid.New(),
			ProductID:    product.ID,
			Attributes:   models.AttributeSet{"color": "red"},
			Price:        f(10),
			InventoryQty: i(3),
			Images:       models.ImageList{"red.jpg"},
		},
		{
			ID:           uuid.New(),
			ProductID:    product.ID,
			Attributes:   models.AttributeSet{"color": "blue"},
			Price:        f(12),
			InventoryQty: i(0),
		},
	}
	return product, productVariants
}

func TestEmptySelectionFallsBackToProduct(t *testing.T) {
	product, productVariants := testProduct()
	r := NewResolver(product, productVariants)

	if r.CurrentVariant() != nil {
		t.Fatal("expected nil variant with empty selection")
	}
	if got := r.CurrentPrice(); got != 25 {
		t.Fatalf("expected base price 25, got %v", got)
	}
	if got := r.CurrentStock(); got != 7 {
		t.Fatalf("expected base stock 7, got %d", got)
	}
	if !r.InStock() {
		t.Fatal("expected base product in stock")
	}
}

func TestExactMatchResolvesVariantOverrides(t *testing.T) {
	product, productVariants := testProduct()
	r := NewResolver(product, productVariants)

	r.SelectAttribute("color", "red")
	if v := r.CurrentVariant(); v == nil {
		t.Fatal("expected red variant to resolve")
	}
	if got := r.CurrentPrice(); got != 10 {
		t.Fatalf("expected variant price 10, got %v", got)
	}
	if !r.InStock() {
		t.Fatal("red variant has stock 3, expected in stock")
	}

	r.SelectAttribute("color", "blue")
	if got := r.CurrentPrice(); got != 12 {
		t.Fatalf("expected variant price 12, got %v", got)
	}
	if r.InStock() {
		t.Fatal("blue variant has stock 0, expected out of stock")
	}
}

func TestUnknownValueFallsBackToProduct(t *testing.T) {
	product, productVariants := testProduct()
	r := NewResolver(product, productVariants)

	r.SelectAttribute("color", "green")
	if r.CurrentVariant() != nil {
		t.Fatal("green is not a variant, expected nil")
	}
	if got := r.CurrentPrice(); got != 25 {
		t.Fatalf("expected fallback to base price 25, got %v", got)
	}
	if got := r.CurrentStock(); got != 7 {
		t.Fatalf("expected fallback to base stock 7, got %d", got)
	}
}

func TestSubsetSelectionDoesNotMatch(t *testing.T) {
	product := models.Product{ID: uuid.New(), Price: 50, InventoryQty: 1}
	productVariants := []models.Variant{
		{
			ID:         uuid.New(),
			ProductID:  product.ID,
			Attributes: models.AttributeSet{"color": "red", "size": "L"},
			Price:      f(60),
		},
	}
	r := NewResolver(product, productVariants)

	r.SelectAttribute("color", "red")
	if r.CurrentVariant() != nil {
		t.Fatal("partial selection matched a two-attribute variant")
	}
	if got := r.CurrentPrice(); got != 50 {
		t.Fatalf("incomplete selection should show base price, got %v", got)
	}

	r.SelectAttribute("size", "L")
	if r.CurrentVariant() == nil {
		t.Fatal("full selection should resolve the variant")
	}
	if got := r.CurrentPrice(); got != 60 {
		t.Fatalf("expected variant price 60, got %v", got)
	}
}

func TestSelectionOverwritesPriorValue(t *testing.T) {
	product, productVariants := testProduct()
	r := NewResolver(product, productVariants)

	r.SelectAttribute("color", "red")
	r.SelectAttribute("color", "blue")
	sel := r.Selection()
	if len(sel) != 1 || sel["color"] != "blue" {
		t.Fatalf("expected selection {color: blue}, got %v", sel)
	}
}

func TestEmptyVariantImagesFallBackToProduct(t *testing.T) {
	product, productVariants := testProduct()
	r := NewResolver(product, productVariants)

	r.SelectAttribute("color", "blue")
	imgs := r.CurrentImages()
	if len(imgs) != 2 || imgs[0] != "base-front.jpg" {
		t.Fatalf("blue variant has no images, expected product images, got %v", imgs)
	}

	r.SelectAttribute("color", "red")
	imgs = r.CurrentImages()
	if len(imgs) != 1 || imgs[0] != "red.jpg" {
		t.Fatalf("expected red variant images, got %v", imgs)
	}
}

func TestImageChangeCallback(t *testing.T) {
	product, productVariants := testProduct()
	r := NewResolver(product, productVariants)

	var fired [][]string
	r.OnImagesChanged(func(imgs []string) {
		fired = append(fired, imgs)
	})

	r.SelectAttribute("color", "red")
	if len(fired) != 1 {
		t.Fatalf("expected one image-change event, got %d", len(fired))
	}
	if fired[0][0] != "red.jpg" {
		t.Fatalf("expected red.jpg, got %v", fired[0])
	}

	// blue has no images of its own, so the gallery falls back to the
	// product images, which is itself a change
	r.SelectAttribute("color", "blue")
	if len(fired) != 2 {
		t.Fatalf("expected a second image-change event, got %d", len(fired))
	}
	if len(fired[1]) != 2 {
		t.Fatalf("expected product image fallback, got %v", fired[1])
	}
}

func TestValidateVariantSetRejectsDuplicates(t *testing.T) {
	dup := []models.Variant{
		{Attributes: models.AttributeSet{"color": "red", "size": "M"}},
		{Attributes: models.AttributeSet{"size": "M", "color": "red"}},
	}
	if err := models.ValidateVariantSet(dup); err == nil {
		t.Fatal("expected duplicate combination to be rejected")
	}
	ok := []models.Variant{
		{Attributes: models.AttributeSet{"color": "red"}},
		{Attributes: models.AttributeSet{"color": "blue"}},
	}
	if err := models.ValidateVariantSet(ok); err != nil {
		t.Fatalf("distinct combinations rejected: %v", err)
	}
}
