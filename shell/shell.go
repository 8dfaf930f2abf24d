// Package shell is the storefront navigation state machine: which page is
// showing, which product is selected, and the breadcrumb history behind the
// in-page back affordance. On the public storefront the authoritative state
// is the URL query (?page=&product=); the in-memory history stack only
// drives same-session breadcrumb UX.
package shell

import (
	"net/url"
)

const (
	PageHome          = "home"
	PageProduct       = "product"
	PageProductDetail = "product-detail"
	PageCart          = "cart"
	PageCheckout      = "checkout"
)

const (
	queryPage    = "page"
	queryProduct = "product"
)

// State tracks the current navigation position.
type State struct {
	CurrentPage       string
	SelectedProductID string
	history           []string
}

// NewState starts on the home page with empty history.
func NewState() *State {
	return &State{CurrentPage: PageHome}
}

// productRelevant pages keep the selected product id on direct navigation.
func productRelevant(page string) bool {
	return page == PageProductDetail
}

// NavigateToPage is a top-level navigation: history and any selected
// product are dropped unless the destination itself shows a product.
func (s *State) NavigateToPage(page string) {
	if page == "" {
		page = PageHome
	}
	s.history = nil
	if !productRelevant(page) {
		s.SelectedProductID = ""
	}
	s.CurrentPage = page
}

// ClickProduct opens a product's detail view. The origin page is pushed for
// the back affordance, except when already on product-detail: hopping from
// product to product must not stack detail pages, so going back lands on
// whatever preceded the first detail view.
func (s *State) ClickProduct(productID string) {
	if s.CurrentPage != PageProductDetail {
		s.history = append(s.history, s.CurrentPage)
	}
	s.SelectedProductID = productID
	s.CurrentPage = PageProductDetail
}

// GoBack pops the breadcrumb stack, defaulting to home when it is empty,
// and drops the product selection.
func (s *State) GoBack() {
	page := PageHome
	if n := len(s.history); n > 0 {
		page = s.history[n-1]
		s.history = s.history[:n-1]
	}
	s.SelectedProductID = ""
	s.CurrentPage = page
}

// NavigateToCart switches to the cart page, keeping the origin reachable
// via GoBack.
func (s *State) NavigateToCart() {
	s.history = append(s.history, s.CurrentPage)
	s.SelectedProductID = ""
	s.CurrentPage = PageCart
}

// HistoryDepth reports how many pages the back affordance can unwind.
func (s *State) HistoryDepth() int {
	return len(s.history)
}

// ═══════════════════════════════════════════════════════════
// URL query contract
// ═══════════════════════════════════════════════════════════

// FromQuery re-derives navigation state from URL query values. Browser
// back/forward re-enter here; the in-memory history stack is deliberately
// not reconstructed.
func FromQuery(values url.Values) *State {
	page := values.Get(queryPage)
	if page == "" {
		page = PageHome
	}
	s := &State{CurrentPage: page}
	if page == PageProductDetail {
		s.SelectedProductID = values.Get(queryProduct)
	}
	return s
}

// Query encodes the state back into the URL contract.
func (s *State) Query() url.Values {
	values := url.Values{}
	values.Set(queryPage, s.CurrentPage)
	if s.CurrentPage == PageProductDetail && s.SelectedProductID != "" {
		values.Set(queryProduct, s.SelectedProductID)
	}
	return values
}

// RedirectToListing is the recovery path for a stale product id in the URL:
// the shell re-points at the default listing page with the selection
// cleared rather than rendering a broken detail view.
func (s *State) RedirectToListing() {
	s.SelectedProductID = ""
	s.history = nil
	s.CurrentPage = PageProduct
}
