package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/qimma-sa/kitchens-api/config"
	"github.com/qimma-sa/kitchens-api/middleware"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public storefront
// and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, loginLimiter middleware.AttemptLimiter) {
	SetupPublicRoutes(r, db)
	SetupAdminRoutes(r, db, cfg, loginLimiter)
}
