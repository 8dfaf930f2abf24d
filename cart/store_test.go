package cart

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/vendora-commerce/vendora-storefront-backend/models"
)

func price(v float64) *float64 { return &v }

func testProduct(name string, basePrice float64) models.Product {
	return models.Product{
		ID:     uuid.New(),
		Name:   name,
		Price:  basePrice,
		Images: models.ImageList{name + ".jpg"},
	}
}

func TestAddItemMergesSameProductAndVariant(t *testing.T) {
	c := New("store-1")
	p := testProduct("Mug", 8)

	c.AddItem(p, nil, 2)
	c.AddItem(p, nil, 3)

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected one merged line, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", lines[0].Quantity)
	}
	if got := c.TotalItems(); got != 5 {
		t.Fatalf("expected 5 total items, got %d", got)
	}
}

func TestAddItemDistinguishesVariants(t *testing.T) {
	c := New("store-1")
	p := testProduct("Shirt", 20)
	v := models.Variant{ID: uuid.New(), ProductID: p.ID, Price: price(22)}

	c.AddItem(p, nil, 1)
	c.AddItem(p, &v, 1)

	if len(c.Lines()) != 2 {
		t.Fatalf("expected product and variant lines kept apart, got %d lines", len(c.Lines()))
	}
	if got := c.TotalPrice(); got != 42 {
		t.Fatalf("expected total 42 (20 + 22), got %v", got)
	}
}

func TestAddItemNonPositiveQuantityIsNoOp(t *testing.T) {
	c := New("store-1")
	p := testProduct("Cap", 10)

	c.AddItem(p, nil, 0)
	c.AddItem(p, nil, -4)

	if len(c.Lines()) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(c.Lines()))
	}
}

func TestPriceSnapshotSurvivesCatalogChange(t *testing.T) {
	c := New("store-1")
	p := testProduct("Tea", 5)

	c.AddItem(p, nil, 2)
	p.Price = 9 // catalog price changes mid-session

	if got := c.TotalPrice(); got != 10 {
		t.Fatalf("expected add-time snapshot total 10, got %v", got)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	c := New("store-1")
	p := testProduct("Pen", 3)

	c.AddItem(p, nil, 4)
	c.UpdateQuantity(p.ID.String(), 0, "")

	if got := c.TotalItems(); got != 0 {
		t.Fatalf("expected line removed, total items %d", got)
	}
	if len(c.Lines()) != 0 {
		t.Fatal("expected no lines after zero-quantity update")
	}
}

func TestUpdateQuantitySetsExactValue(t *testing.T) {
	c := New("store-1")
	p := testProduct("Pen", 3)

	c.AddItem(p, nil, 4)
	c.UpdateQuantity(p.ID.String(), 9, "")

	if got := c.TotalItems(); got != 9 {
		t.Fatalf("expected quantity 9, got %d", got)
	}
}

func TestRemoveItem(t *testing.T) {
	c := New("store-1")
	a := testProduct("A", 1)
	b := testProduct("B", 2)

	c.AddItem(a, nil, 1)
	c.AddItem(b, nil, 1)
	c.RemoveItem(a.ID.String(), "")

	lines := c.Lines()
	if len(lines) != 1 || lines[0].Name != "B" {
		t.Fatalf("expected only B to remain, got %v", lines)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	c := New("store-1")
	c.AddItem(testProduct("X", 1), nil, 3)

	c.Clear()
	c.Clear()

	if c.TotalItems() != 0 || len(c.Lines()) != 0 {
		t.Fatal("expected empty cart after double clear")
	}
}

func TestSetStoreIDClearsOnSwitch(t *testing.T) {
	c := New("store-1")
	c.AddItem(testProduct("X", 1), nil, 2)

	c.SetStoreID("store-1")
	if c.TotalItems() != 2 {
		t.Fatal("rebinding to the same store must keep lines")
	}

	c.SetStoreID("store-2")
	if c.TotalItems() != 0 {
		t.Fatal("switching stores must clear lines")
	}
	if c.StoreID() != "store-2" {
		t.Fatalf("expected rebind to store-2, got %s", c.StoreID())
	}
}

func TestSessionsGetReusesCart(t *testing.T) {
	s := NewSessions(time.Hour)
	p := testProduct("Mug", 8)

	s.Get("sess-1", "store-1").AddItem(p, nil, 1)
	c := s.Get("sess-1", "store-1")

	if c.TotalItems() != 1 {
		t.Fatalf("expected same cart across Get calls, items %d", c.TotalItems())
	}
	if s.Len() != 1 {
		t.Fatalf("expected one session, got %d", s.Len())
	}
}

func TestSessionsSweepEvictsIdleCarts(t *testing.T) {
	s := NewSessions(time.Nanosecond)
	s.Get("sess-1", "store-1")
	time.Sleep(time.Millisecond)

	if removed := s.Sweep(); removed != 1 {
		t.Fatalf("expected one evicted cart, got %d", removed)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", s.Len())
	}
}
