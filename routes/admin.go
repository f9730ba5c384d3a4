package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/qimma-sa/kitchens-api/config"
	adminController "github.com/qimma-sa/kitchens-api/controllers/admin"
	orderControllers "github.com/qimma-sa/kitchens-api/controllers/order"
	productcontroller "github.com/qimma-sa/kitchens-api/controllers/product"
	visitControllers "github.com/qimma-sa/kitchens-api/controllers/visit"
	"github.com/qimma-sa/kitchens-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/api/admin/*" endpoints. Login is
// rate-limited; everything else requires a bearer token.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, loginLimiter middleware.AttemptLimiter) {
	admin := r.Group("/api/admin")

	admin.POST("/login", middleware.LoginRateLimit(loginLimiter), adminController.Login(db, cfg.JWTSecret))

	protected := admin.Group("")
	protected.Use(middleware.RequireAdmin(cfg.JWTSecret))
	{
		protected.GET("/stats", adminController.Stats(db))

		// ─────────── Category Management ───────────
		protected.POST("/categories", productcontroller.CreateCategory(db))
		protected.PATCH("/categories/:id", productcontroller.UpdateCategory(db))
		protected.DELETE("/categories/:id", productcontroller.DeleteCategory(db))

		// ─────────── Product Management ───────────
		protected.POST("/products", productcontroller.CreateProduct(db))
		protected.PATCH("/products/:id", productcontroller.UpdateProduct(db))
		protected.DELETE("/products/:id", productcontroller.DeleteProduct(db))

		// ─────────── Orders ───────────
		protected.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		protected.GET("/orders/export-excel", orderControllers.ExportOrdersToExcel(db))
		protected.GET("/orders/:id", orderControllers.GetOrderByIDHandler(db))
		protected.PATCH("/orders/:id", orderControllers.UpdateOrderStatusHandler(db))

		// ─────────── Visit Requests ───────────
		protected.GET("/visit-requests", visitControllers.GetAllVisitRequestsHandler(db))
		protected.PATCH("/visit-requests/:id", visitControllers.UpdateVisitStatusHandler(db))
	}
}
