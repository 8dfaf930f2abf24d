// Package cart holds the in-memory shopping carts for active storefront
// sessions. Carts are never persisted on their own; a cart becomes durable
// only as the line snapshot inside an order at checkout.
package cart

import (
	"sync"

	"github.com/vendora-commerce/vendora-storefront-backend/models"
)

// Line is one cart entry. Price is the snapshot captured at add time;
// mid-session catalog price changes do not silently alter an open cart.
type Line struct {
	ProductID string  `json:"product_id"`
	VariantID string  `json:"variant_id,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

// Cart is one session's cart, bound to a single store at a time.
type Cart struct {
	mu      sync.Mutex
	storeID string
	lines   []Line
}

// New returns an empty cart bound to the given store.
func New(storeID string) *Cart {
	return &Cart{storeID: storeID}
}

// StoreID reports the store the cart is currently bound to.
func (c *Cart) StoreID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.storeID
}

// SetStoreID rebinds the cart to a store. Switching to a different store
// clears existing lines: a cart must never mix products from two stores
// into one checkout payload.
func (c *Cart) SetStoreID(storeID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if storeID != c.storeID {
		c.lines = nil
	}
	c.storeID = storeID
}

// AddItem merges into an existing line when (productID, variantID) matches,
// otherwise appends. A quantity of zero or less is a no-op.
func (c *Cart) AddItem(product models.Product, variant *models.Variant, quantity int) {
	if quantity <= 0 {
		return
	}

	variantID := ""
	price := product.Price
	images := product.Images
	if variant != nil {
		variantID = variant.ID.String()
		if variant.Price != nil {
			price = *variant.Price
		}
		if len(variant.Images) > 0 {
			images = variant.Images
		}
	}
	image := ""
	if len(images) > 0 {
		image = images[0]
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	productID := product.ID.String()
	for i, line := range c.lines {
		if line.ProductID == productID && line.VariantID == variantID {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, Line{
		ProductID: productID,
		VariantID: variantID,
		Name:      product.Name,
		Price:     price,
		Quantity:  quantity,
		Image:     image,
	})
}

// UpdateQuantity sets the quantity of a matching line. A resulting quantity
// of zero or less removes the line.
func (c *Cart) UpdateQuantity(productID string, newQuantity int, variantID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if newQuantity <= 0 {
		c.removeLocked(productID, variantID)
		return
	}
	for i, line := range c.lines {
		if line.ProductID == productID && line.VariantID == variantID {
			c.lines[i].Quantity = newQuantity
			return
		}
	}
}

// RemoveItem removes the matching line unconditionally.
func (c *Cart) RemoveItem(productID, variantID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID, variantID)
}

func (c *Cart) removeLocked(productID, variantID string) {
	for i, line := range c.lines {
		if line.ProductID == productID && line.VariantID == variantID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Idempotent.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the current line items in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalItems sums quantities across all lines.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice sums price x quantity using the add-time price snapshots.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for _, line := range c.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}
