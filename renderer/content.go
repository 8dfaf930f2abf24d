package renderer

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Block content arrives as a free-form JSONB bag. Each strategy decodes the
// bag into its own typed content struct, so field access stays explicit and
// a malformed bag degrades to zero values instead of failing the render.

func decodeContent[T any](bag datatypes.JSONMap) T {
	var out T
	if len(bag) == 0 {
		return out
	}
	raw, err := json.Marshal(map[string]interface{}(bag))
	if err != nil {
		return out
	}
	_ = json.Unmarshal(raw, &out)
	return out
}

type HeroContent struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"button_text"`
	ButtonLink string `json:"button_link"`
	ImageURL   string `json:"image_url"`
}

type ProductsContent struct {
	Title        string `json:"title"`
	ShowPrices   *bool  `json:"show_prices"`
	ProductLimit int    `json:"product_limit"`
}

type ProductDetailContent struct {
	ShowDescription *bool `json:"show_description"`
	ShowSKU         *bool `json:"show_sku"`
}

type TextImageContent struct {
	Title         string `json:"title"`
	Text          string `json:"text"`
	ImageURL      string `json:"image_url"`
	ImagePosition string `json:"image_position"` // left or right
}

type TextVideoContent struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	VideoURL string `json:"video_url"`
}

type ContactContent struct {
	Title   string `json:"title"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type GalleryContent struct {
	Title  string   `json:"title"`
	Images []string `json:"images"`
}

type VideoContent struct {
	Title    string `json:"title"`
	VideoURL string `json:"video_url"`
	Autoplay bool   `json:"autoplay"`
}

type FooterContent struct {
	Text  string       `json:"text"`
	Links []FooterLink `json:"links"`
}

type FooterLink struct {
	Label string `json:"label"`
	Page  string `json:"page"`
}

type FeaturesContent struct {
	Title string        `json:"title"`
	Items []FeatureItem `json:"items"`
}

type FeatureItem struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type TestimonialsContent struct {
	Title string            `json:"title"`
	Items []TestimonialItem `json:"items"`
}

type TestimonialItem struct {
	Author string `json:"author"`
	Quote  string `json:"quote"`
	Rating int    `json:"rating"`
}

type FAQContent struct {
	Title string    `json:"title"`
	Items []FAQItem `json:"items"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type BeforeAfterContent struct {
	Title       string `json:"title"`
	BeforeImage string `json:"before_image"`
	AfterImage  string `json:"after_image"`
	BeforeLabel string `json:"before_label"`
	AfterLabel  string `json:"after_label"`
}

type ComparisonContent struct {
	Title   string          `json:"title"`
	Columns []string        `json:"columns"`
	Rows    []ComparisonRow `json:"rows"`
}

type ComparisonRow struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

type CartContent struct {
	Title        string `json:"title"`
	EmptyMessage string `json:"empty_message"`
}

type CheckoutContent struct {
	Title      string `json:"title"`
	ButtonText string `json:"button_text"`
}

type GuaranteesContent struct {
	Title string          `json:"title"`
	Items []GuaranteeItem `json:"items"`
}

type GuaranteeItem struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}
