package renderer

import (
	"fmt"
	"strings"

	"github.com/vendora-commerce/vendora-storefront-backend/models"
	"github.com/vendora-commerce/vendora-storefront-backend/variants"
)

// ═══════════════════════════════════════════════════════════
// Marketing blocks
// ═══════════════════════════════════════════════════════════

func renderHero(b models.Block, ctx *Context, w *strings.Builder) {
	c := decodeContent[HeroContent](b.Content)
	w.WriteString(`<div class="hero">`)
	if c.ImageURL != "" {
		fmt.Fprintf(w, `<img src="%s" alt="%s">`, esc(c.ImageURL), esc(c.Title))
	}
	title := c.Title
	if title == "" {
		title = ctx.Store.Name
	}
	fmt.Fprintf(w, `<h1 style="font-size:%s">%s</h1>`, headingSize(ctx.ViewMode), esc(title))
	if c.Subtitle != "" {
		fmt.Fprintf(w, `<p style="font-size:%s">%s</p>`, bodySize(ctx.ViewMode), esc(c.Subtitle))
	}
	if c.ButtonText != "" {
		link := c.ButtonLink
		if link == "" {
			link = "?page=product"
		}
		fmt.Fprintf(w, `<a class="cta" href="%s">%s</a>`, esc(link), esc(c.ButtonText))
	}
	w.WriteString(`</div>`)
}

func renderTextImage(b models.Block, ctx *Context, w *strings.Builder) {
	c := decodeContent[TextImageContent](b.Content)
	side := c.ImagePosition
	if side != "left" {
		side = "right"
	}
	fmt.Fprintf(w, `<div class="text-image image-%s">`, side)
	heading(w, ctx, c.Title)
	if c.Text != "" {
		fmt.Fprintf(w, `<p style="font-size:%s">%s</p>`, bodySize(ctx.ViewMode), esc(c.Text))
	}
	if c.ImageURL != "" {
		fmt.Fprintf(w, `<img src="%s" alt="%s">`, esc(c.ImageURL), esc(c.Title))
	}
	w.WriteString(`</div>`)
}

func renderTextVideo(b models.Block, ctx *Context, w *strings.Builder) {
	c := decodeContent[TextVideoContent](b.Content)
	w.WriteString(`<div class="text-video">`)
	heading(w, ctx, c.Title)
	if c.Text != "" {
		fmt.Fprintf(w, `<p style="font-size:%s">%s</p>`, bodySize(ctx.ViewMode), esc(c.Text))
	}
	if c.VideoURL != "" {
		fmt.Fprintf(w, `<iframe src="%s" loading="lazy"></iframe>`, esc(c.VideoURL))
	}
	w.WriteString(`</div>`)
}

func renderContact(b models.Block, ctx *Context, w *strings.Builder) {
	c := decodeContent[ContactContent](b.Content)
	w.WriteString(`<div class="contact">`)
	title := c.Title
	if title == "" {
		title = "Contact us"
	}
	heading(w, ctx, title)
	w.WriteString(`<ul>`)
	if c.Email != "" {
		fmt.Fprintf(w, `<li><a href="mailto:%s">%s</a></li>`, esc(c.Email), esc(c.Email))
	}
	if c.Phone != "" {
		fmt.Fprintf(w, `<li>%s</li>`, esc(c.Phone))
	}
	if c.Address != "" {
		fmt.Fprintf(w, `<li>%s</li>`, esc(c.Address))
	}
	w.WriteString(`</ul>`)
	if !ctx.IsEditing {
		w.WriteString(`<form data-action="contact"><input name="email" type="email"><textarea name="message"></textarea><button type="submit">Send</button></form>`)
	}
	w.WriteString(`</div>`)
}

func renderGallery(b models.Block, ctx *Context, w *strings.Builder) {
	c := decodeContent[GalleryContent](b.Content)
	w.WriteString(`<div class="gallery">`)
	heading(w, ctx, c.Title)
	if len(c.Images) == 0 {
		w.WriteString(emptyState("No images in this gallery yet"))
	} else {
		fmt.Fprintf(w, `<div class="grid" style="grid-template-columns:repeat(%d, 1fr)">`, gridColumns(ctx.ViewMode))
		for _, img := range c.Images {
			fmt.Fprintf(w, `<img src="%s" loading="lazy">`, esc(img))
		}
		w.WriteString(`</div>`)
	}
	w.WriteString(`</div>`)
}

func renderVideo(b models.Block, ctx *Context, w *strings.Builder) {
	c := decodeContent[VideoContent](b.Content)
	w.WriteString(`<div class="video">`)
	heading(w, ctx, c.Title)
	if c.VideoURL == "" {
		w.WriteString(emptyState("No video selected"))
	} else {
		autoplay := ""
		// the builder canvas never autoplays
		if c.Autoplay && !ctx.IsEditing {
			autoplay = " autoplay muted"
		}
		fmt.Fprintf(w, `<video src="%s" controls%s></video>`, esc(c.VideoURL), autoplay)
	}
	w.WriteString(`</div>`)
}

func renderFooter(b models.Block, ctx *Context, w *strings.Builder) {
	c := decodeContent[FooterContent](b.Content)
	w.WriteString(`<footer>`)
	text := c.Text
	if text == "" {
		text = ctx.Store.Name
	}
	fmt.Fprintf(w, `<p>%s</p>`, esc(text))
	if len(c.Links) > 0 {
		w.WriteString(`<nav>`)
		for _, link := range c.Links {
			fmt.Fprintf(w, `<a href="?page=%s">%s</a>`, esc(link.Page), esc(link.Label))
		}
		w.WriteString(`</nav>`)
	}
	w.WriteString(`</footer>`)
}

func renderFeatures(b models.Block, ctx *Context, w *strings.Builder) {
	c := decodeContent[FeaturesContent](b.Content)
	w.WriteString(`<div class="features">`)
	heading(w, ctx, c.Title)
	fmt.Fprintf(w, `<div class="grid" style="grid-template-columns:repeat(%d, 1fr)">`, gridColumns(ctx.ViewMode))
	for _, item := range c.Items {
		w.WriteString(`<div class="feature">`)
		if item.Icon != "" {
			fmt.Fprintf(w, `<span class="icon">%s</span>`, esc(item.Icon))
		}
		fmt.Fprintf(w, `<h3>%s</h3><p>%s</p>`, esc(item.Title), esc(item.Description))
		w.WriteString(`</div>`)
	}
	w.WriteString(`</div></div>`)
}

// editingTestimonials is the fixture shown on the builder canvas so the
// merchant styles the block without pulling live review data.
var editingTestimonials = []TestimonialItem{
	{Author: "Alex P.", Quote: "Exactly what I was looking for, arrived in two days.", Rating: 5},
	{Author: "Sam R.", Quote: "Great quality for the price.", Rating: 4},
	{Author: "Jordan M.", Quote: "Customer service went above and beyond.", Rating: 5},
}

func renderTestimonials(b models.Block, ctx *Context, w *strings.Builder) {
	c := decodeContent[TestimonialsContent](b.Content)
	items := c.Items
	if ctx.IsEditing {
		items = editingTestimonials
	}
	w.WriteString(`<div class="testimonials">`)
	title := c.Title
	if title == "" {
		title = "What customers say"
	}
	heading(w, ctx, title)
	if len(items) == 0 {
		w.WriteString(emptyState("No testimonials yet"))
	}
	fmt.Fprintf(w, `<div class="grid" style="grid-template-columns:repeat(%d, 1fr)">`, gridColumns(ctx.ViewMode))
	for _, item := range items {
		w.WriteString(`<blockquote>`)
		fmt.Fprintf(w, `<p>%s</p>`, esc(item.Quote))
		fmt.Fprintf(w, `<cite>%s</cite>`, esc(item.Author))
		if item.Rating > 0 {
			fmt.Fprintf(w, `<span class="rating">%s</span>`, strings.Repeat("★", clampRating(item.Rating)))
		}
		w.WriteString(`</blockquote>`)
	}
	w.WriteString(`</div></div>`)
}

func clampRating(r int) int {
	if r < 1 {
		return 1
	}
	if r > 5 {
		return 5
	}
	return r
}

func renderFAQ(b models.Block, ctx *Context, w *strings.Builder) {
	c := decodeContent[FAQContent](b.Content)
	w.WriteString(`<div class="faq">`)
	title := c.Title
	if title == "" {
		title = "Frequently asked questions"
	}
	heading(w, ctx, title)
	if len(c.Items) == 0 {
		w.WriteString(emptyState("No questions yet"))
	}
	for _, item := range c.Items {
		fmt.Fprintf(w, `<details><summary>%s</summary><p>%s</p></details>`, esc(item.Question), esc(item.Answer))
	}
	w.WriteString(`</div>`)
}

func renderBeforeAfter(b models.Block, ctx *Context, w *strings.Builder) {
	c := decodeContent[BeforeAfterContent](b.Content)
	w.WriteString(`<div class="before-after">`)
	heading(w, ctx, c.Title)
	beforeLabel := c.BeforeLabel
	if beforeLabel == "" {
		beforeLabel = "Before"
	}
	afterLabel := c.AfterLabel
	if afterLabel == "" {
		afterLabel = "After"
	}
	w.WriteString(`<div class="pair">`)
	fmt.Fprintf(w, `<figure><img src="%s"><figcaption>%s</figcaption></figure>`, esc(c.BeforeImage), esc(beforeLabel))
	fmt.Fprintf(w, `<figure><img src="%s"><figcaption>%s</figcaption></figure>`, esc(c.AfterImage), esc(afterLabel))
	w.WriteString(`</div></div>`)
}

func renderComparison(b models.Block, ctx *Context, w *strings.Builder) {
	c := decodeContent[ComparisonContent](b.Content)
	w.WriteString(`<div class="comparison">`)
	heading(w, ctx, c.Title)
	if len(c.Rows) == 0 {
		w.WriteString(emptyState("No comparison data yet"))
		w.WriteString(`</div>`)
		return
	}
	w.WriteString(`<table><thead><tr><th></th>`)
	for _, col := range c.Columns {
		fmt.Fprintf(w, `<th>%s</th>`, esc(col))
	}
	w.WriteString(`</tr></thead><tbody>`)
	for _, row := range c.Rows {
		fmt.Fprintf(w, `<tr><td>%s</td>`, esc(row.Label))
		for _, v := range row.Values {
			fmt.Fprintf(w, `<td>%s</td>`, esc(v))
		}
		w.WriteString(`</tr>`)
	}
	w.WriteString(`</tbody></table></div>`)
}

func renderGuarantees(b models.Block, ctx *Context, w *strings.Builder) {
	c := decodeContent[GuaranteesContent](b.Content)
	w.WriteString(`<div class="guarantees">`)
	heading(w, ctx, c.Title)
	fmt.Fprintf(w, `<div class="grid" style="grid-template-columns:repeat(%d, 1fr)">`, gridColumns(ctx.ViewMode))
	for _, item := range c.Items {
		w.WriteString(`<div class="guarantee">`)
		if item.Icon != "" {
			fmt.Fprintf(w, `<span class="icon">%s</span>`, esc(item.Icon))
		}
		fmt.Fprintf(w, `<h3>%s</h3><p>%s</p>`, esc(item.Title), esc(item.Text))
		w.WriteString(`</div>`)
	}
	w.WriteString(`</div></div>`)
}

func renderDefaultBlock(b models.Block, ctx *Context, w *strings.Builder) {
	// placeholder for unrecognized or intentionally-default blocks; the
	// page keeps rendering around it
	fmt.Fprintf(w, `<div class="block-placeholder">Unsupported block type: %s</div>`, esc(string(b.Type)))
}

// ═══════════════════════════════════════════════════════════
// Commerce blocks
// ═══════════════════════════════════════════════════════════

func renderProducts(b models.Block, ctx *Context, w *strings.Builder) {
	c := decodeContent[ProductsContent](b.Content)
	w.WriteString(`<div class="products">`)
	title := c.Title
	if title == "" {
		title = "Our products"
	}
	heading(w, ctx, title)

	switch {
	case ctx.ProductsErr != nil:
		w.WriteString(errorState("Products are unavailable right now"))
	case !ctx.ProductsLoaded:
		w.WriteString(loadingState("Loading products…"))
	case len(ctx.Products) == 0:
		w.WriteString(emptyState("No products in this store yet"))
	default:
		products := ctx.Products
		if c.ProductLimit > 0 && len(products) > c.ProductLimit {
			products = products[:c.ProductLimit]
		}
		showPrices := c.ShowPrices == nil || *c.ShowPrices
		fmt.Fprintf(w, `<div class="grid" style="grid-template-columns:repeat(%d, 1fr)">`, gridColumns(ctx.ViewMode))
		for _, p := range products {
			r := resolverFor(ctx, p)
			fmt.Fprintf(w, `<article class="product-card" data-product-id="%s">`, esc(p.ID.String()))
			if imgs := r.CurrentImages(); len(imgs) > 0 {
				fmt.Fprintf(w, `<img src="%s" alt="%s" loading="lazy">`, esc(imgs[0]), esc(p.Name))
			}
			fmt.Fprintf(w, `<h3>%s</h3>`, esc(p.Name))
			if showPrices {
				writePriceTag(w, r.CurrentPrice(), r.CurrentComparePrice())
			}
			if !r.InStock() {
				w.WriteString(`<span class="badge out-of-stock">Out of stock</span>`)
			}
			fmt.Fprintf(w, `<a href="?page=product-detail&product=%s">View</a>`, esc(p.ID.String()))
			w.WriteString(`</article>`)
		}
		w.WriteString(`</div>`)
	}
	w.WriteString(`</div>`)
}

func renderProductDetail(b models.Block, ctx *Context, w *strings.Builder) {
	c := decodeContent[ProductDetailContent](b.Content)
	w.WriteString(`<div class="product-detail">`)
	defer w.WriteString(`</div>`)

	switch {
	case ctx.ProductsErr != nil:
		w.WriteString(errorState("This product is unavailable right now"))
		return
	case !ctx.ProductsLoaded:
		w.WriteString(loadingState("Loading product…"))
		return
	}

	p, ok := pickProduct(ctx)
	if !ok {
		w.WriteString(emptyState("No products in this store yet"))
		return
	}

	// the gallery tracks the resolver's image set through the change
	// callback: applying the in-page selection below swaps it to the
	// variant images exactly the way a live selection change would
	r := variants.NewResolver(p, ctx.VariantsOf[p.ID.String()])
	gallery := r.CurrentImages()
	r.OnImagesChanged(func(imgs []string) { gallery = imgs })
	for attrType, valueID := range ctx.Selection {
		r.SelectAttribute(attrType, valueID)
	}

	w.WriteString(`<div class="gallery">`)
	if len(gallery) == 0 {
		w.WriteString(emptyState("No images"))
	}
	for i, img := range gallery {
		class := "thumb"
		if i == 0 {
			class = "main"
		}
		fmt.Fprintf(w, `<img class="%s" src="%s" alt="%s">`, class, esc(img), esc(p.Name))
	}
	w.WriteString(`</div>`)

	w.WriteString(`<div class="info">`)
	fmt.Fprintf(w, `<h1 style="font-size:%s">%s</h1>`, headingSize(ctx.ViewMode), esc(p.Name))
	if c.ShowSKU != nil && *c.ShowSKU && p.SKU != "" {
		fmt.Fprintf(w, `<span class="sku">%s</span>`, esc(p.SKU))
	}
	writePriceTag(w, r.CurrentPrice(), r.CurrentComparePrice())

	writeAttributePickers(w, ctx, p)

	if r.InStock() {
		fmt.Fprintf(w, `<span class="badge in-stock">In stock (%d)</span>`, r.CurrentStock())
		fmt.Fprintf(w, `<button data-action="add-to-cart" data-product-id="%s"%s>Add to cart</button>`,
			esc(p.ID.String()), variantAttr(r))
	} else {
		w.WriteString(`<span class="badge out-of-stock">Out of stock</span>`)
		w.WriteString(`<button disabled>Out of stock</button>`)
	}

	if (c.ShowDescription == nil || *c.ShowDescription) && p.Description != "" {
		fmt.Fprintf(w, `<p class="description" style="font-size:%s">%s</p>`, bodySize(ctx.ViewMode), esc(p.Description))
	}
	w.WriteString(`</div>`)
}

func variantAttr(r *variants.Resolver) string {
	if id := r.CurrentVariantID(); id != "" {
		return fmt.Sprintf(` data-variant-id="%s"`, esc(id))
	}
	return ""
}

// writeAttributePickers lists every attribute type across the product's
// variants with its value options, marking the current selection.
func writeAttributePickers(w *strings.Builder, ctx *Context, p models.Product) {
	productVariants := ctx.VariantsOf[p.ID.String()]
	if len(productVariants) == 0 {
		return
	}

	options := map[string][]string{}
	var order []string
	for _, v := range productVariants {
		for attrType, valueID := range v.Attributes {
			if _, seen := options[attrType]; !seen {
				order = append(order, attrType)
			}
			if !contains(options[attrType], valueID) {
				options[attrType] = append(options[attrType], valueID)
			}
		}
	}

	for _, attrType := range order {
		fmt.Fprintf(w, `<fieldset class="attribute" data-attribute="%s"><legend>%s</legend>`, esc(attrType), esc(attrType))
		for _, valueID := range options[attrType] {
			selected := ""
			if ctx.Selection[attrType] == valueID {
				selected = ` class="selected"`
			}
			fmt.Fprintf(w, `<button%s data-value="%s">%s</button>`, selected, esc(valueID), esc(valueID))
		}
		w.WriteString(`</fieldset>`)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func writePriceTag(w *strings.Builder, current float64, compare *float64) {
	w.WriteString(`<div class="price">`)
	fmt.Fprintf(w, `<span class="current">%s</span>`, formatPrice(current))
	if compare != nil && *compare > current {
		fmt.Fprintf(w, `<span class="compare">%s</span>`, formatPrice(*compare))
	}
	w.WriteString(`</div>`)
}

func renderCart(b models.Block, ctx *Context, w *strings.Builder) {
	c := decodeContent[CartContent](b.Content)
	w.WriteString(`<div class="cart">`)
	title := c.Title
	if title == "" {
		title = "Your cart"
	}
	heading(w, ctx, title)
	if len(ctx.CartLines) == 0 {
		msg := c.EmptyMessage
		if msg == "" {
			msg = "Your cart is empty"
		}
		w.WriteString(emptyState(msg))
		w.WriteString(`</div>`)
		return
	}
	w.WriteString(`<ul>`)
	for _, line := range ctx.CartLines {
		w.WriteString(`<li class="cart-line">`)
		if line.Image != "" {
			fmt.Fprintf(w, `<img src="%s">`, esc(line.Image))
		}
		fmt.Fprintf(w, `<span class="name">%s</span><span class="qty">×%d</span><span class="line-price">%s</span>`,
			esc(line.Name), line.Quantity, formatPrice(line.Price*float64(line.Quantity)))
		w.WriteString(`</li>`)
	}
	w.WriteString(`</ul>`)
	fmt.Fprintf(w, `<div class="total">%s</div>`, formatPrice(ctx.CartTotal))
	w.WriteString(`<a href="?page=checkout">Checkout</a></div>`)
}

func renderCheckout(b models.Block, ctx *Context, w *strings.Builder) {
	c := decodeContent[CheckoutContent](b.Content)
	w.WriteString(`<div class="checkout">`)
	title := c.Title
	if title == "" {
		title = "Checkout"
	}
	heading(w, ctx, title)
	if len(ctx.CartLines) == 0 {
		w.WriteString(emptyState("Your cart is empty"))
		w.WriteString(`</div>`)
		return
	}
	fmt.Fprintf(w, `<div class="summary">%d items · %s</div>`, ctx.CartCount, formatPrice(ctx.CartTotal))
	buttonText := c.ButtonText
	if buttonText == "" {
		buttonText = "Place order"
	}
	fmt.Fprintf(w, `<form data-action="checkout"><input name="customer_name" placeholder="Name"><input name="customer_email" type="email" placeholder="Email"><button type="submit"%s>%s</button></form>`,
		disabledInEditor(ctx), esc(buttonText))
	w.WriteString(`</div>`)
}

// disabledInEditor keeps the builder canvas from submitting real orders.
func disabledInEditor(ctx *Context) string {
	if ctx.IsEditing {
		return " disabled"
	}
	return ""
}
