// Package variants resolves a shopper's attribute selection against a
// product's variant records. It is a pure read model over a snapshot of
// product + variants supplied by the caller; nothing here touches storage.
package variants

import (
	"github.com/vendora-commerce/vendora-storefront-backend/models"
)

// Resolver tracks the current attribute selection for one product view.
// The selection lives only as long as the view; it is never persisted.
type Resolver struct {
	product  models.Product
	variants []models.Variant

	selection models.AttributeSet

	// onImagesChanged fires whenever a selection change swaps the resolved
	// image set (variant images vs. product images).
	onImagesChanged func([]string)
}

// NewResolver builds a resolver over a product snapshot. The variant slice
// is taken as-is; combination uniqueness is enforced at the write boundary
// (models.ValidateVariantSet), not here.
func NewResolver(product models.Product, productVariants []models.Variant) *Resolver {
	return &Resolver{
		product:   product,
		variants:  productVariants,
		selection: make(models.AttributeSet),
	}
}

// OnImagesChanged registers the image-change callback used by the
// product-detail renderer to keep the gallery in sync with the selection.
func (r *Resolver) OnImagesChanged(fn func([]string)) {
	r.onImagesChanged = fn
}

// SelectAttribute records the shopper's choice for one attribute type,
// overwriting any prior choice for that type.
func (r *Resolver) SelectAttribute(attributeType, valueID string) {
	before := r.CurrentImages()
	r.selection[attributeType] = valueID
	after := r.CurrentImages()
	if r.onImagesChanged != nil && !sameImages(before, after) {
		r.onImagesChanged(after)
	}
}

// Selection returns a copy of the current selection mapping.
func (r *Resolver) Selection() models.AttributeSet {
	out := make(models.AttributeSet, len(r.selection))
	for k, v := range r.selection {
		out[k] = v
	}
	return out
}

// CurrentVariant returns the variant whose attribute set exactly equals the
// current selection, or nil when nothing matches or the selection is
// incomplete. A subset match is not a match.
func (r *Resolver) CurrentVariant() *models.Variant {
	if len(r.selection) == 0 {
		return nil
	}
	for i := range r.variants {
		if r.variants[i].Attributes.Equal(r.selection) {
			return &r.variants[i]
		}
	}
	return nil
}

// CurrentVariantID returns the resolved variant's id, or "" when the
// selection does not resolve.
func (r *Resolver) CurrentVariantID() string {
	if v := r.CurrentVariant(); v != nil {
		return v.ID.String()
	}
	return ""
}

// CurrentPrice resolves variant price override, else product base price.
func (r *Resolver) CurrentPrice() float64 {
	if v := r.CurrentVariant(); v != nil && v.Price != nil {
		return *v.Price
	}
	return r.product.Price
}

// CurrentComparePrice resolves the compare-at price the same way; nil means
// no compare price anywhere in the chain.
func (r *Resolver) CurrentComparePrice() *float64 {
	if v := r.CurrentVariant(); v != nil && v.ComparePrice != nil {
		return v.ComparePrice
	}
	return r.product.ComparePrice
}

// CurrentStock resolves variant inventory override, else product inventory.
func (r *Resolver) CurrentStock() int {
	if v := r.CurrentVariant(); v != nil && v.InventoryQty != nil {
		return *v.InventoryQty
	}
	return r.product.InventoryQty
}

// InStock is true iff the resolved stock is positive.
func (r *Resolver) InStock() bool {
	return r.CurrentStock() > 0
}

// CurrentImages returns the active variant's image list when non-empty,
// else the product's own images. An empty-gallery variant never hides the
// product imagery.
func (r *Resolver) CurrentImages() []string {
	if v := r.CurrentVariant(); v != nil && len(v.Images) > 0 {
		return v.Images
	}
	return r.product.Images
}

func sameImages(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
