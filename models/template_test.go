package models

import (
	"errors"
	"testing"

	"gorm.io/datatypes"
)

func testTemplate() *Template {
	return &Template{
		Pages: PagesMap{
			"home": {
				{ID: "block-a", Type: BlockHero, Order: 0},
				{ID: "block-b", Type: BlockProducts, Order: 1},
				{ID: "block-c", Type: BlockFooter, Order: 2},
			},
		},
	}
}

func TestAddBlockAssignsFreshID(t *testing.T) {
	tpl := testTemplate()

	added, err := tpl.AddBlock("home", Block{ID: "client-id", Type: BlockFAQ, Order: 3})
	if err != nil {
		t.Fatalf("AddBlock failed: %v", err)
	}
	if added.ID == "client-id" || added.ID == "" {
		t.Fatalf("expected server-assigned id, got %q", added.ID)
	}
	if len(tpl.Pages["home"]) != 4 {
		t.Fatalf("expected 4 blocks, got %d", len(tpl.Pages["home"]))
	}
}

func TestAddBlockRejectsUnknownType(t *testing.T) {
	tpl := testTemplate()

	if _, err := tpl.AddBlock("home", Block{Type: "carousel-3d"}); !errors.Is(err, ErrInvalidBlockType) {
		t.Fatalf("expected ErrInvalidBlockType, got %v", err)
	}
}

func TestAddBlockCreatesMissingPage(t *testing.T) {
	tpl := &Template{}

	if _, err := tpl.AddBlock("about", Block{Type: BlockTextImage}); err != nil {
		t.Fatalf("AddBlock failed: %v", err)
	}
	if len(tpl.Pages["about"]) != 1 {
		t.Fatalf("expected page to be created with 1 block")
	}
}

func TestUpdateBlockTypeIsImmutable(t *testing.T) {
	tpl := testTemplate()

	_, err := tpl.UpdateBlock("home", Block{ID: "block-a", Type: BlockVideo})
	if !errors.Is(err, ErrTypeImmutable) {
		t.Fatalf("expected ErrTypeImmutable, got %v", err)
	}

	// Omitting the type keeps the stored one.
	updated, err := tpl.UpdateBlock("home", Block{
		ID:      "block-a",
		Content: datatypes.JSONMap{"title": "New headline"},
	})
	if err != nil {
		t.Fatalf("UpdateBlock failed: %v", err)
	}
	if updated.Type != BlockHero {
		t.Fatalf("expected stored type %q, got %q", BlockHero, updated.Type)
	}
	if updated.Content["title"] != "New headline" {
		t.Fatalf("content not applied")
	}
}

func TestUpdateBlockMissing(t *testing.T) {
	tpl := testTemplate()

	if _, err := tpl.UpdateBlock("home", Block{ID: "block-x"}); !errors.Is(err, ErrBlockNotFound) {
		t.Fatalf("expected ErrBlockNotFound, got %v", err)
	}
	if _, err := tpl.UpdateBlock("missing", Block{ID: "block-a"}); !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
}

func TestDeleteBlock(t *testing.T) {
	tpl := testTemplate()

	if err := tpl.DeleteBlock("home", "block-b"); err != nil {
		t.Fatalf("DeleteBlock failed: %v", err)
	}
	for _, b := range tpl.Pages["home"] {
		if b.ID == "block-b" {
			t.Fatalf("block-b still present after delete")
		}
	}

	if err := tpl.DeleteBlock("home", "block-b"); !errors.Is(err, ErrBlockNotFound) {
		t.Fatalf("expected ErrBlockNotFound on second delete, got %v", err)
	}
}

func TestReorderBlocksSwapsAndRenumbers(t *testing.T) {
	tpl := testTemplate()

	if err := tpl.ReorderBlocks("home", "block-a", "block-c"); err != nil {
		t.Fatalf("ReorderBlocks failed: %v", err)
	}

	sorted := tpl.SortedBlocks("home")
	ids := []string{sorted[0].ID, sorted[1].ID, sorted[2].ID}
	want := []string{"block-c", "block-b", "block-a"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("position %d: got %s, want %s", i, ids[i], want[i])
		}
	}
	for i, b := range sorted {
		if b.Order != i {
			t.Fatalf("block %s has order %d, want %d", b.ID, b.Order, i)
		}
	}
}

func TestReorderBlocksUnknownID(t *testing.T) {
	tpl := testTemplate()

	if err := tpl.ReorderBlocks("home", "block-a", "block-x"); !errors.Is(err, ErrBlockNotFound) {
		t.Fatalf("expected ErrBlockNotFound, got %v", err)
	}
}

func TestSortedBlocksStableOnEqualOrder(t *testing.T) {
	tpl := &Template{
		Pages: PagesMap{
			"home": {
				{ID: "block-z", Type: BlockHero, Order: 0},
				{ID: "block-a", Type: BlockFooter, Order: 0},
			},
		},
	}

	first := tpl.SortedBlocks("home")
	if first[0].ID != "block-a" {
		t.Fatalf("expected id tiebreak to put block-a first, got %s", first[0].ID)
	}

	// Same outcome regardless of stored order.
	tpl.Pages["home"][0], tpl.Pages["home"][1] = tpl.Pages["home"][1], tpl.Pages["home"][0]
	second := tpl.SortedBlocks("home")
	if second[0].ID != first[0].ID || second[1].ID != first[1].ID {
		t.Fatalf("sort order depends on insertion sequence")
	}
}

func TestEnsurePageKeepsExisting(t *testing.T) {
	tpl := testTemplate()
	tpl.EnsurePage("home")
	if len(tpl.Pages["home"]) != 3 {
		t.Fatalf("EnsurePage clobbered existing blocks")
	}
	tpl.EnsurePage("contact")
	if blocks, ok := tpl.Pages["contact"]; !ok || len(blocks) != 0 {
		t.Fatalf("expected empty contact page")
	}
}
