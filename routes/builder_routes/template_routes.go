package builder_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vendora-commerce/vendora-storefront-backend/controllers/builder/order_controller"
	"github.com/vendora-commerce/vendora-storefront-backend/controllers/builder/template_controller"
	"github.com/vendora-commerce/vendora-storefront-backend/middleware"
)

// SetupTemplateRoutes wires the merchant-facing site builder surface. All
// routes require a merchant JWT and sit behind the rate limiter.
func SetupTemplateRoutes(router *gin.RouterGroup) {
	builder := router.Group("/builder")
	builder.Use(middleware.AuthMiddleware())
	builder.Use(middleware.RateLimiter(120, time.Minute))
	{
		stores := builder.Group("/stores/:storeId")

		stores.GET("/template", template_controller.GetTemplate)
		stores.PUT("/template", template_controller.SaveTemplate)
		stores.PATCH("/template", template_controller.SaveTemplate)

		stores.POST("/pages/:page/blocks", template_controller.AddBlock)
		stores.PATCH("/pages/:page/blocks/:blockId", template_controller.UpdateBlock)
		stores.DELETE("/pages/:page/blocks/:blockId", template_controller.DeleteBlock)
		stores.POST("/pages/:page/blocks/reorder", template_controller.ReorderBlocks)

		stores.POST("/preview", template_controller.PreviewBlock)

		// Customer orders view the preview's host channel navigates to
		stores.GET("/orders", order_controller.GetStoreOrders)
	}
}
