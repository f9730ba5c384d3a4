package main

import (
	"flag"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/qimma-sa/kitchens-api/config"
	"github.com/qimma-sa/kitchens-api/middleware"
	"github.com/qimma-sa/kitchens-api/models"
	"github.com/qimma-sa/kitchens-api/routes"
	"github.com/qimma-sa/kitchens-api/seed"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	loginAttemptLimit  = 5
	loginAttemptWindow = 15 * time.Minute
)

func main() {
	runSeed := flag.Bool("seed", false, "seed the database with the default admin and sample catalog, then exit")
	flag.Parse()

	log.Println("✅ Starting application...")

	cfg := config.Load()

	db := initDatabase(cfg)

	if err := db.AutoMigrate(
		&models.AdminUser{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductColor{},
		&models.Order{},
		&models.OrderItem{},
		&models.VisitRequest{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	if *runSeed {
		if err := seed.Run(db); err != nil {
			log.Fatalf("❌ Seeding failed: %v", err)
		}
		return
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, db, cfg, initLoginLimiter(cfg))

	log.Printf("🚀 Server running on port %s...", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	return db
}

// initLoginLimiter prefers the redis-backed limiter so the attempt window
// is shared across instances; without REDIS_URL it falls back to an
// in-process one.
func initLoginLimiter(cfg *config.Config) middleware.AttemptLimiter {
	if cfg.RedisURL == "" {
		return middleware.NewMemoryLimiter(loginAttemptLimit, loginAttemptWindow)
	}
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Invalid REDIS_URL: %v", err)
	}
	return middleware.NewRedisLimiter(redis.NewClient(opt), loginAttemptLimit, loginAttemptWindow)
}
