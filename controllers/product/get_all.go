package productcontroller

import (
	"math"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/qimma-sa/kitchens-api/models"
	"gorm.io/gorm"
)

// GetProducts lists the catalog with optional filters and sorting.
// Query params: category, material_type, search, featured, sort
// (newest | price_low | price_high).
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).
			Preload("Images").Preload("Colors").Preload("Category")

		if categoryID := c.Query("category"); categoryID != "" {
			cid, err := strconv.ParseUint(categoryID, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "معرّف التصنيف غير صالح"})
				return
			}
			query = query.Where("category_id = ?", uint(cid))
		}
		if materialType := c.Query("material_type"); materialType != "" {
			query = query.Where("material_type = ?", materialType)
		}
		if search := c.Query("search"); search != "" {
			query = query.Where("title_ar ILIKE ?", "%"+search+"%")
		}
		if c.Query("featured") == "true" {
			query = query.Where("is_featured = ?", true)
		}

		var products []models.Product
		if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في جلب المنتجات"})
			return
		}

		sortProducts(products, c.DefaultQuery("sort", "newest"))

		c.JSON(http.StatusOK, products)
	}
}

// sortProducts re-orders by unit price when requested. Unpriced products
// sort as infinitely expensive ascending and as zero descending, so they
// trail the list in both directions.
func sortProducts(products []models.Product, by string) {
	switch by {
	case "price_low":
		sort.SliceStable(products, func(i, j int) bool {
			return priceOr(products[i], math.Inf(1)) < priceOr(products[j], math.Inf(1))
		})
	case "price_high":
		sort.SliceStable(products, func(i, j int) bool {
			return priceOr(products[i], 0) > priceOr(products[j], 0)
		})
	}
}

func priceOr(p models.Product, missing float64) float64 {
	if !p.PricePerMeter.Valid {
		return missing
	}
	f, _ := p.PricePerMeter.Decimal.Float64()
	return f
}
