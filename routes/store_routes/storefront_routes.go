package store_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vendora-commerce/vendora-storefront-backend/controllers/store/cart_controller"
	"github.com/vendora-commerce/vendora-storefront-backend/controllers/store/checkout_controller"
	"github.com/vendora-commerce/vendora-storefront-backend/controllers/store/page_controller"
	"github.com/vendora-commerce/vendora-storefront-backend/controllers/store/preview_controller"
	"github.com/vendora-commerce/vendora-storefront-backend/controllers/store/product_controller"
)

// SetupStorefrontRoutes wires the public shopper-facing surface. No auth;
// cart identity rides on the X-Session-ID header.
func SetupStorefrontRoutes(router *gin.RouterGroup) {
	store := router.Group("/store/:storeId")

	// Rendered page fragments (?page=&product=&view=)
	store.GET("/page", page_controller.GetPage)

	// Catalog reads
	products := store.Group("/products")
	{
		products.GET("", product_controller.GetStorefrontProducts)
		products.GET("/:id", product_controller.GetStorefrontProductByID)
	}

	// Session cart
	cart := store.Group("/cart")
	{
		cart.GET("", cart_controller.GetCart)
		cart.POST("/items", cart_controller.AddItem)
		cart.PATCH("/items", cart_controller.UpdateItem)
		cart.DELETE("/items", cart_controller.RemoveItem)
		cart.DELETE("", cart_controller.ClearCart)
	}

	store.POST("/checkout", checkout_controller.Checkout)

	// Editor preview bridge
	store.GET("/preview/ws", preview_controller.PreviewSocket)
}
