package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qimma-sa/kitchens-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductInput struct {
	TitleAr       string           `json:"titleAr" binding:"required"`
	DescriptionAr string           `json:"descriptionAr" binding:"required"`
	CategoryID    *uint            `json:"categoryId"`
	MaterialType  string           `json:"materialType" binding:"required"`
	PricePerMeter *decimal.Decimal `json:"pricePerMeter"`
	IsCustomPrice bool             `json:"isCustomPrice"`
	IsFeatured    bool             `json:"isFeatured"`
	Images        []string         `json:"images"`
	Colors        []string         `json:"colors"`
}

// CreateProduct creates a product together with its image URLs and colors.
// POST /api/admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "بيانات المنتج غير صالحة"})
			return
		}
		if !models.IsValidMaterialType(input.MaterialType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "نوع الخامة غير صالح"})
			return
		}

		product := models.Product{
			TitleAr:       input.TitleAr,
			DescriptionAr: input.DescriptionAr,
			CategoryID:    input.CategoryID,
			MaterialType:  input.MaterialType,
			IsCustomPrice: input.IsCustomPrice,
			IsFeatured:    input.IsFeatured,
		}
		if input.PricePerMeter != nil {
			product.PricePerMeter = decimal.NullDecimal{Decimal: *input.PricePerMeter, Valid: true}
		}
		for _, url := range input.Images {
			product.Images = append(product.Images, models.ProductImage{URL: url})
		}
		for _, color := range input.Colors {
			product.Colors = append(product.Colors, models.ProductColor{ColorNameAr: color})
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في إنشاء المنتج"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
