package shell

import (
	"net/url"
	"testing"
)

func TestNavigateToPageClearsHistoryAndSelection(t *testing.T) {
	s := NewState()
	s.ClickProduct("p1")
	s.NavigateToPage("contact")

	if s.CurrentPage != "contact" {
		t.Fatalf("expected contact, got %s", s.CurrentPage)
	}
	if s.SelectedProductID != "" {
		t.Fatal("expected selection cleared on top-level navigation")
	}
	if s.HistoryDepth() != 0 {
		t.Fatalf("expected empty history, depth %d", s.HistoryDepth())
	}
}

func TestProductDetailDoesNotStackItself(t *testing.T) {
	s := NewState()
	s.NavigateToPage("home")
	s.ClickProduct("x")
	if s.HistoryDepth() != 1 {
		t.Fatalf("expected home pushed once, depth %d", s.HistoryDepth())
	}

	// clicking another product from X's detail page must not push
	// product-detail onto the stack
	s.ClickProduct("y")
	if s.SelectedProductID != "y" {
		t.Fatalf("expected selection y, got %s", s.SelectedProductID)
	}
	if s.HistoryDepth() != 1 {
		t.Fatalf("expected history unchanged, depth %d", s.HistoryDepth())
	}

	// back from Y's detail returns to the page that preceded X, not to X
	s.GoBack()
	if s.CurrentPage != "home" {
		t.Fatalf("expected home, got %s", s.CurrentPage)
	}
	if s.SelectedProductID != "" {
		t.Fatal("expected selection cleared on back")
	}
}

func TestGoBackDefaultsToHome(t *testing.T) {
	s := NewState()
	s.GoBack()
	if s.CurrentPage != PageHome {
		t.Fatalf("expected home with empty history, got %s", s.CurrentPage)
	}
}

func TestNavigateToCartPushesOrigin(t *testing.T) {
	s := NewState()
	s.NavigateToPage("product")
	s.NavigateToCart()

	if s.CurrentPage != PageCart {
		t.Fatalf("expected cart, got %s", s.CurrentPage)
	}
	s.GoBack()
	if s.CurrentPage != "product" {
		t.Fatalf("expected back to product listing, got %s", s.CurrentPage)
	}
}

func TestFromQueryDefaults(t *testing.T) {
	s := FromQuery(url.Values{})
	if s.CurrentPage != PageHome {
		t.Fatalf("expected home for empty query, got %s", s.CurrentPage)
	}
	if s.SelectedProductID != "" {
		t.Fatal("expected no selection for empty query")
	}
}

func TestQueryRoundTrip(t *testing.T) {
	values := url.Values{}
	values.Set("page", PageProductDetail)
	values.Set("product", "123")

	s := FromQuery(values)
	if s.CurrentPage != PageProductDetail || s.SelectedProductID != "123" {
		t.Fatalf("bad decode: %+v", s)
	}

	out := s.Query()
	if out.Get("page") != PageProductDetail || out.Get("product") != "123" {
		t.Fatalf("bad encode: %v", out)
	}
}

func TestProductParamIgnoredOffDetailPage(t *testing.T) {
	values := url.Values{}
	values.Set("page", "home")
	values.Set("product", "123")

	s := FromQuery(values)
	if s.SelectedProductID != "" {
		t.Fatal("product param is only meaningful on product-detail")
	}
}

func TestRedirectToListingOnStaleProduct(t *testing.T) {
	values := url.Values{}
	values.Set("page", PageProductDetail)
	values.Set("product", "gone")
	s := FromQuery(values)

	s.RedirectToListing()
	if s.CurrentPage != PageProduct {
		t.Fatalf("expected listing page, got %s", s.CurrentPage)
	}
	if s.SelectedProductID != "" {
		t.Fatal("expected selection cleared after redirect")
	}
	if got := s.Query().Get("product"); got != "" {
		t.Fatalf("expected no product in redirected query, got %s", got)
	}
}

func TestFetchGuardDiscardsStaleResult(t *testing.T) {
	var g FetchGuard

	acceptA := g.Begin("product-a")
	acceptB := g.Begin("product-b")

	if acceptA() {
		t.Fatal("fetch for A resolved after navigating to B; must be discarded")
	}
	if !acceptB() {
		t.Fatal("fetch for the current product must be accepted")
	}

	g.Reset()
	if acceptB() {
		t.Fatal("after leaving the detail view no result should be accepted")
	}
}

func TestEmitterDeliversMessages(t *testing.T) {
	e := NewEmitter()
	var got []string
	e.OnMessage(func(m Message) {
		got = append(got, m.Type)
	})

	if err := e.Send(Message{Type: MsgClosePreview}); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if err := e.Send(Message{Type: MsgNavigateToCustomerOrders}); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	if len(got) != 2 || got[0] != MsgClosePreview || got[1] != MsgNavigateToCustomerOrders {
		t.Fatalf("unexpected delivery: %v", got)
	}
}
