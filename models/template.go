package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Block Types
// ═══════════════════════════════════════════════════════════

type BlockType string

const (
	BlockHero          BlockType = "hero"
	BlockProducts      BlockType = "products"
	BlockProductDetail BlockType = "product-detail"
	BlockTextImage     BlockType = "text-image"
	BlockTextVideo     BlockType = "text-video"
	BlockContact       BlockType = "contact"
	BlockGallery       BlockType = "gallery"
	BlockVideo         BlockType = "video"
	BlockFooter        BlockType = "footer"
	BlockFeatures      BlockType = "features"
	BlockTestimonials  BlockType = "testimonials"
	BlockFAQ           BlockType = "faq"
	BlockBeforeAfter   BlockType = "before-after"
	BlockComparison    BlockType = "comparison"
	BlockCart          BlockType = "cart"
	BlockCheckout      BlockType = "checkout"
	BlockGuarantees    BlockType = "guarantees"
	BlockDefault       BlockType = "default-fallback"
)

// AllBlockTypes lists every type the builder can place on a page.
var AllBlockTypes = []BlockType{
	BlockHero, BlockProducts, BlockProductDetail, BlockTextImage,
	BlockTextVideo, BlockContact, BlockGallery, BlockVideo, BlockFooter,
	BlockFeatures, BlockTestimonials, BlockFAQ, BlockBeforeAfter,
	BlockComparison, BlockCart, BlockCheckout, BlockGuarantees, BlockDefault,
}

func (t BlockType) Valid() bool {
	for _, known := range AllBlockTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ═══════════════════════════════════════════════════════════
// Block
// ═══════════════════════════════════════════════════════════

// BlockStyles are the per-block visual overrides. All fields are optional;
// the renderer supplies defaults (white background, black text) when absent.
type BlockStyles struct {
	BackgroundColor string `json:"background_color,omitempty"`
	TextColor       string `json:"text_color,omitempty"`
	Padding         string `json:"padding,omitempty"`
	Margin          string `json:"margin,omitempty"`
}

// Block is one content unit on a storefront page. Content is a free-form
// bag interpreted per Type by the renderer. Type never changes after
// creation; the builder models a type change as delete + add.
type Block struct {
	ID      string            `json:"id"`
	Type    BlockType         `json:"type"`
	Content datatypes.JSONMap `json:"content"`
	Styles  BlockStyles       `json:"styles"`
	Order   int               `json:"order"`
}

// NewBlockID returns an id unique within any page list. The time prefix
// keeps ids roughly sortable by creation; the uuid suffix carries uniqueness.
func NewBlockID() string {
	return fmt.Sprintf("block-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// ═══════════════════════════════════════════════════════════
// Pages (JSONB map pageName -> ordered block list)
// ═══════════════════════════════════════════════════════════

type PagesMap map[string][]Block

func (p *PagesMap) Scan(value interface{}) error {
	if value == nil {
		*p = make(PagesMap)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan PagesMap")
	}
	return json.Unmarshal(bytes, p)
}

func (p PagesMap) Value() (driver.Value, error) {
	if p == nil {
		return json.Marshal(map[string][]Block{})
	}
	return json.Marshal(p)
}

// ═══════════════════════════════════════════════════════════
// Template (GORM)
// ═══════════════════════════════════════════════════════════

type TemplateStyles struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	FontFamily     string `json:"font_family"`
}

// Template is the full per-store site definition: global styles plus the
// mapping of page name to its ordered block list.
type Template struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	StoreID        uuid.UUID `json:"store_id" gorm:"type:uuid;not null;uniqueIndex"`
	Name           string    `json:"name" gorm:"not null"`
	Description    string    `json:"description"`
	PrimaryColor   string    `json:"primary_color" gorm:"default:'#000000'"`
	SecondaryColor string    `json:"secondary_color" gorm:"default:'#666666'"`
	FontFamily     string    `json:"font_family" gorm:"default:'Inter'"`
	Pages          PagesMap  `json:"pages" gorm:"type:jsonb;not null;default:'{}'"`
	IsPublished    bool      `json:"is_published" gorm:"default:false;index"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (t *Template) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Template) TableName() string {
	return "templates"
}

func (t *Template) Styles() TemplateStyles {
	return TemplateStyles{
		PrimaryColor:   t.PrimaryColor,
		SecondaryColor: t.SecondaryColor,
		FontFamily:     t.FontFamily,
	}
}

// ═══════════════════════════════════════════════════════════
// Block content model operations
// ═══════════════════════════════════════════════════════════

var (
	ErrPageNotFound     = errors.New("page not found in template")
	ErrBlockNotFound    = errors.New("block not found on page")
	ErrInvalidBlockType = errors.New("unknown block type")
	ErrTypeImmutable    = errors.New("block type cannot change after creation")
)

// EnsurePage guarantees the page key exists. A page with no blocks is valid
// and renders as an empty state.
func (t *Template) EnsurePage(page string) {
	if t.Pages == nil {
		t.Pages = make(PagesMap)
	}
	if _, ok := t.Pages[page]; !ok {
		t.Pages[page] = []Block{}
	}
}

// SortedBlocks returns the page's blocks in display order. Sorting is
// stable with the block id as tiebreak, so lists where several blocks share
// order 0 still render deterministically regardless of insertion sequence.
func (t *Template) SortedBlocks(page string) []Block {
	blocks, ok := t.Pages[page]
	if !ok {
		return nil
	}
	out := make([]Block, len(blocks))
	copy(out, blocks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order == out[j].Order {
			return out[i].ID < out[j].ID
		}
		return out[i].Order < out[j].Order
	})
	return out
}

// AddBlock instantiates the given template block on a page with a fresh id.
// A zero Order is kept as-is; the stable sort handles collisions.
func (t *Template) AddBlock(page string, block Block) (Block, error) {
	if !block.Type.Valid() {
		return Block{}, ErrInvalidBlockType
	}
	t.EnsurePage(page)
	block.ID = NewBlockID()
	t.Pages[page] = append(t.Pages[page], block)
	return block, nil
}

// UpdateBlock replaces the block with the same id in place. The stored type
// wins over whatever the caller sent; changing type is delete + add.
func (t *Template) UpdateBlock(page string, updated Block) (Block, error) {
	blocks, ok := t.Pages[page]
	if !ok {
		return Block{}, ErrPageNotFound
	}
	for i, b := range blocks {
		if b.ID == updated.ID {
			if updated.Type != "" && updated.Type != b.Type {
				return Block{}, ErrTypeImmutable
			}
			updated.Type = b.Type
			blocks[i] = updated
			t.Pages[page] = blocks
			return updated, nil
		}
	}
	return Block{}, ErrBlockNotFound
}

// DeleteBlock removes the block by id from the page's list.
func (t *Template) DeleteBlock(page, blockID string) error {
	blocks, ok := t.Pages[page]
	if !ok {
		return ErrPageNotFound
	}
	for i, b := range blocks {
		if b.ID == blockID {
			t.Pages[page] = append(blocks[:i], blocks[i+1:]...)
			return nil
		}
	}
	return ErrBlockNotFound
}

// ReorderBlocks swaps the display position of two blocks on one page and
// renumbers the page so every block carries a unique order. Other pages are
// untouched.
func (t *Template) ReorderBlocks(page, draggedID, targetID string) error {
	if _, ok := t.Pages[page]; !ok {
		return ErrPageNotFound
	}
	sorted := t.SortedBlocks(page)
	draggedIdx, targetIdx := -1, -1
	for i, b := range sorted {
		if b.ID == draggedID {
			draggedIdx = i
		}
		if b.ID == targetID {
			targetIdx = i
		}
	}
	if draggedIdx < 0 || targetIdx < 0 {
		return ErrBlockNotFound
	}
	sorted[draggedIdx], sorted[targetIdx] = sorted[targetIdx], sorted[draggedIdx]
	for i := range sorted {
		sorted[i].Order = i
	}
	t.Pages[page] = sorted
	return nil
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type SaveTemplateRequest struct {
	Name           *string   `json:"name"`
	Description    *string   `json:"description"`
	PrimaryColor   *string   `json:"primary_color"`
	SecondaryColor *string   `json:"secondary_color"`
	FontFamily     *string   `json:"font_family"`
	Pages          *PagesMap `json:"pages"`
	IsPublished    *bool     `json:"is_published"`
}

type AddBlockRequest struct {
	Type    BlockType         `json:"type" binding:"required"`
	Content datatypes.JSONMap `json:"content"`
	Styles  BlockStyles       `json:"styles"`
	Order   int               `json:"order"`
}

type UpdateBlockRequest struct {
	Content *datatypes.JSONMap `json:"content"`
	Styles  *BlockStyles       `json:"styles"`
	Order   *int               `json:"order"`
}

type ReorderBlocksRequest struct {
	DraggedID string `json:"dragged_id" binding:"required"`
	TargetID  string `json:"target_id" binding:"required"`
}
