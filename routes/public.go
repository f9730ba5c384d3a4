package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/qimma-sa/kitchens-api/controllers/order"
	productcontroller "github.com/qimma-sa/kitchens-api/controllers/product"
	visitControllers "github.com/qimma-sa/kitchens-api/controllers/visit"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the storefront endpoints: catalog browsing
// plus order and visit-request submission. No auth.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		api.GET("/categories", productcontroller.GetAllCategories(db))
		api.GET("/products", productcontroller.GetProducts(db))
		api.GET("/products/:id", productcontroller.GetProductByID(db))

		api.POST("/orders", orderControllers.PlaceOrderHandler(db))
		api.POST("/visit-requests", visitControllers.CreateVisitRequestHandler(db))
	}
}
