package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

type ImageList []string

func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = make(ImageList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ImageList")
	}
	return json.Unmarshal(bytes, l)
}

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

// AttributeSet maps an attribute type (e.g. "color") to the chosen
// attribute value id (e.g. "red"). One set describes one concrete variant
// combination.
type AttributeSet map[string]string

func (a *AttributeSet) Scan(value interface{}) error {
	if value == nil {
		*a = make(AttributeSet)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan AttributeSet")
	}
	return json.Unmarshal(bytes, a)
}

func (a AttributeSet) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal(map[string]string{})
	}
	return json.Marshal(a)
}

// Key returns a canonical representation used to compare combinations.
// Two variants with the same Key are duplicates and rejected at the boundary.
func (a AttributeSet) Key() string {
	if len(a) == 0 {
		return ""
	}
	parts := make([]string, 0, len(a))
	for k, v := range a {
		parts = append(parts, k+"="+v)
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

// Equal reports whether both sets hold exactly the same pairs.
func (a AttributeSet) Equal(other AttributeSet) bool {
	if len(a) != len(other) {
		return false
	}
	for k, v := range a {
		if other[k] != v {
			return false
		}
	}
	return true
}

// ═══════════════════════════════════════════════════════════
// Product (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	StoreID      uuid.UUID `json:"store_id" gorm:"type:uuid;not null;index"`
	Name         string    `json:"name" gorm:"not null;index"`
	Description  string    `json:"description"`
	Price        float64   `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	ComparePrice *float64  `json:"compare_price,omitempty" gorm:"type:numeric(12,2)"`
	Images       ImageList `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	InventoryQty int       `json:"inventory_qty" gorm:"default:0"`
	SKU          string    `json:"sku"`
	Status       string    `json:"status" gorm:"not null;check:status IN ('Active', 'Draft');index;default:'Active'"`
	Variants     []Variant `json:"variants,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// ═══════════════════════════════════════════════════════════
// Variant (GORM)
// ═══════════════════════════════════════════════════════════

// Variant is one purchasable attribute combination of a product with its
// own optional overrides. A nil override falls back to the product base.
type Variant struct {
	ID           uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID    uuid.UUID    `json:"product_id" gorm:"type:uuid;not null;index"`
	Attributes   AttributeSet `json:"attributes" gorm:"type:jsonb;not null;default:'{}'"`
	Price        *float64     `json:"price,omitempty" gorm:"type:numeric(12,2)"`
	ComparePrice *float64     `json:"compare_price,omitempty" gorm:"type:numeric(12,2)"`
	Cost         *float64     `json:"cost,omitempty" gorm:"type:numeric(12,2)"`
	InventoryQty *int         `json:"inventory_qty,omitempty"`
	Weight       *float64     `json:"weight,omitempty"`
	SKU          string       `json:"sku"`
	Images       ImageList    `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt    time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

func (v *Variant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Variant) TableName() string {
	return "product_variants"
}

// ErrDuplicateVariant flags two variants of one product sharing an
// identical attribute combination, which would make resolution ambiguous.
var ErrDuplicateVariant = errors.New("duplicate variant attribute combination")

// ValidateVariantSet enforces combination uniqueness across a product's
// variants. Called at the write boundary, not in the resolver.
func ValidateVariantSet(variants []Variant) error {
	seen := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		key := v.Attributes.Key()
		if _, dup := seen[key]; dup {
			return ErrDuplicateVariant
		}
		seen[key] = struct{}{}
	}
	return nil
}
