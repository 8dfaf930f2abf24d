package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"

	"github.com/vendora-commerce/vendora-storefront-backend/config"
	"github.com/vendora-commerce/vendora-storefront-backend/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds a demo store with a published template and a small catalog.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("VENDORA STOREFRONT - Demo Store Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	if err := config.DB.AutoMigrate(
		&models.Store{},
		&models.Template{},
		&models.Product{},
		&models.Variant{},
		&models.Order{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	store := seedStore()
	seedProducts(store)
	seedTemplate(store)

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Demo Store Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Store ID: %s\n", store.ID)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Printf("2. Fetch the home page: GET /api/v1/store/%s/page\n", store.ID)
	fmt.Printf("3. Open the builder:   GET /api/v1/builder/stores/%s/template\n", store.ID)
	fmt.Println()
}

func seedStore() *models.Store {
	var existing models.Store
	if err := config.DB.Where("slug = ?", "demo-outfitters").First(&existing).Error; err == nil {
		log.Printf("✓ Store '%s' already exists, reusing", existing.Slug)
		return &existing
	}

	store := models.Store{
		Name:    "Demo Outfitters",
		Slug:    "demo-outfitters",
		OwnerID: uuid.Must(uuid.NewV7()),
	}
	if err := config.DB.Create(&store).Error; err != nil {
		log.Fatalf("Failed to create store: %v", err)
	}
	log.Printf("✓ Created store %s", store.ID)
	return &store
}

func seedProducts(store *models.Store) {
	price := func(v float64) *float64 { return &v }
	stock := func(v int) *int { return &v }

	products := []models.Product{
		{
			StoreID:      store.ID,
			Name:         "Trail Jacket",
			Description:  "Windproof shell for shoulder-season hiking.",
			Price:        120,
			ComparePrice: price(150),
			Images:       models.ImageList{"/img/trail-jacket.jpg"},
			InventoryQty: 40,
			SKU:          "TJ-100",
			Variants: []models.Variant{
				{
					Attributes:   models.AttributeSet{"color": "red", "size": "m"},
					Price:        price(110),
					InventoryQty: stock(12),
					Images:       models.ImageList{"/img/trail-jacket-red.jpg"},
				},
				{
					Attributes:   models.AttributeSet{"color": "red", "size": "l"},
					InventoryQty: stock(6),
					Images:       models.ImageList{"/img/trail-jacket-red.jpg"},
				},
				{
					Attributes:   models.AttributeSet{"color": "blue", "size": "m"},
					Price:        price(125),
					InventoryQty: stock(0),
					Images:       models.ImageList{"/img/trail-jacket-blue.jpg"},
				},
			},
		},
		{
			StoreID:      store.ID,
			Name:         "Camp Mug",
			Description:  "Enamel mug, holds 350ml.",
			Price:        18,
			Images:       models.ImageList{"/img/camp-mug.jpg"},
			InventoryQty: 200,
			SKU:          "CM-200",
		},
		{
			StoreID:      store.ID,
			Name:         "Field Backpack",
			Description:  "28L daypack with rain cover.",
			Price:        89,
			ComparePrice: price(110),
			Images:       models.ImageList{"/img/field-backpack.jpg"},
			InventoryQty: 25,
			SKU:          "FB-300",
		},
	}

	for i := range products {
		if err := models.ValidateVariantSet(products[i].Variants); err != nil {
			log.Fatalf("Invalid variant set for %s: %v", products[i].Name, err)
		}
		if err := config.DB.Create(&products[i]).Error; err != nil {
			log.Fatalf("Failed to create product %s: %v", products[i].Name, err)
		}
	}
	log.Printf("✓ Created %d products", len(products))
}

func seedTemplate(store *models.Store) {
	home := []models.Block{
		block(models.BlockHero, 0, datatypes.JSONMap{
			"title":       "Gear up for the outdoors",
			"subtitle":    "Tested on real trails",
			"button_text": "Shop now",
			"button_link": "?page=product",
		}),
		block(models.BlockFeatures, 1, datatypes.JSONMap{
			"title": "Why shop with us",
			"items": []any{
				map[string]any{"title": "Free shipping", "description": "On orders over $75"},
				map[string]any{"title": "30-day returns", "description": "No questions asked"},
				map[string]any{"title": "Field tested", "description": "By people who hike"},
			},
		}),
		block(models.BlockProducts, 2, datatypes.JSONMap{
			"title": "Featured gear",
			"product_limit": float64(6),
		}),
		block(models.BlockTestimonials, 3, datatypes.JSONMap{
			"title": "What customers say",
			"items": []any{
				map[string]any{"author": "Dana K.", "quote": "The jacket survived a week in the Rockies.", "rating": float64(5)},
			},
		}),
		block(models.BlockFAQ, 4, datatypes.JSONMap{
			"title": "Questions",
			"items": []any{
				map[string]any{"question": "Do you ship internationally?", "answer": "Yes, to most countries."},
			},
		}),
		block(models.BlockFooter, 5, datatypes.JSONMap{
			"text": "© Demo Outfitters",
		}),
	}

	contact := []models.Block{
		block(models.BlockTextImage, 0, datatypes.JSONMap{
			"title": "Our story",
			"text":  "Started in a garage, now shipping worldwide.",
			"image_url": "/img/workshop.jpg",
		}),
		block(models.BlockGallery, 1, datatypes.JSONMap{
			"title":  "From the field",
			"images": []any{"/img/field-1.jpg", "/img/field-2.jpg", "/img/field-3.jpg"},
		}),
		block(models.BlockVideo, 2, datatypes.JSONMap{
			"title": "Watch the gear in action",
			"video_url": "https://videos.demo.test/field-test.mp4",
		}),
		block(models.BlockTextVideo, 3, datatypes.JSONMap{
			"title":     "How we test",
			"text":      "Every product spends a season outdoors before launch.",
			"video_url": "https://videos.demo.test/testing.mp4",
		}),
		block(models.BlockBeforeAfter, 4, datatypes.JSONMap{
			"title":        "Waterproofing treatment",
			"before_image": "/img/before.jpg",
			"after_image":  "/img/after.jpg",
		}),
		block(models.BlockComparison, 5, datatypes.JSONMap{
			"title": "Jacket lineup",
			"columns": []any{"Trail Jacket", "Storm Jacket"},
			"rows": []any{
				map[string]any{"label": "Windproof", "values": []any{"Yes", "Yes"}},
				map[string]any{"label": "Waterproof", "values": []any{"No", "Yes"}},
			},
		}),
		block(models.BlockGuarantees, 6, datatypes.JSONMap{
			"items": []any{
				map[string]any{"title": "Lifetime repairs", "text": "We fix what we sell."},
			},
		}),
		block(models.BlockContact, 7, datatypes.JSONMap{
			"title": "Get in touch",
			"email": "hello@demo-outfitters.test",
		}),
	}

	pages := models.PagesMap{
		"home":           home,
		"contact":        contact,
		"product":        {block(models.BlockProducts, 0, datatypes.JSONMap{"title": "All gear"})},
		"product-detail": {block(models.BlockProductDetail, 0, datatypes.JSONMap{})},
		"cart":           {block(models.BlockCart, 0, datatypes.JSONMap{"title": "Your cart"})},
		"checkout":       {block(models.BlockCheckout, 0, datatypes.JSONMap{"title": "Checkout"})},
	}

	template := models.Template{
		StoreID:     store.ID,
		Name:        "Demo Outfitters",
		Description: "Seeded demo site",
		Pages:       pages,
		IsPublished: true,
	}
	if err := config.DB.Create(&template).Error; err != nil {
		log.Fatalf("Failed to create template: %v", err)
	}
	log.Printf("✓ Created published template %s (%d pages)", template.ID, len(pages))
}

func block(t models.BlockType, order int, content datatypes.JSONMap) models.Block {
	return models.Block{
		ID:      models.NewBlockID(),
		Type:    t,
		Content: content,
		Styles:  models.BlockStyles{},
		Order:   order,
	}
}
