package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/qimma-sa/kitchens-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductUpdateInput carries partial updates; nil fields are left
// untouched. Images and Colors, when present, replace the full list.
type ProductUpdateInput struct {
	TitleAr       *string          `json:"titleAr"`
	DescriptionAr *string          `json:"descriptionAr"`
	CategoryID    *uint            `json:"categoryId"`
	MaterialType  *string          `json:"materialType"`
	PricePerMeter *decimal.Decimal `json:"pricePerMeter"`
	IsCustomPrice *bool            `json:"isCustomPrice"`
	IsFeatured    *bool            `json:"isFeatured"`
	Images        *[]string        `json:"images"`
	Colors        *[]string        `json:"colors"`
}

// UpdateProduct applies a partial update. PATCH /api/admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "معرّف المنتج غير صالح"})
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "بيانات المنتج غير صالحة"})
			return
		}
		if input.MaterialType != nil && !models.IsValidMaterialType(*input.MaterialType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "نوع الخامة غير صالح"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "المنتج غير موجود"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في تحديث المنتج"})
			}
			return
		}

		if input.TitleAr != nil {
			product.TitleAr = *input.TitleAr
		}
		if input.DescriptionAr != nil {
			product.DescriptionAr = *input.DescriptionAr
		}
		if input.CategoryID != nil {
			product.CategoryID = input.CategoryID
		}
		if input.MaterialType != nil {
			product.MaterialType = *input.MaterialType
		}
		if input.PricePerMeter != nil {
			product.PricePerMeter = decimal.NullDecimal{Decimal: *input.PricePerMeter, Valid: true}
		}
		if input.IsCustomPrice != nil {
			product.IsCustomPrice = *input.IsCustomPrice
		}
		if input.IsFeatured != nil {
			product.IsFeatured = *input.IsFeatured
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&product).Error; err != nil {
				return err
			}
			if input.Images != nil {
				if err := tx.Where("product_id = ?", product.ID).
					Delete(&models.ProductImage{}).Error; err != nil {
					return err
				}
				for _, url := range *input.Images {
					if err := tx.Create(&models.ProductImage{ProductID: product.ID, URL: url}).Error; err != nil {
						return err
					}
				}
			}
			if input.Colors != nil {
				if err := tx.Where("product_id = ?", product.ID).
					Delete(&models.ProductColor{}).Error; err != nil {
					return err
				}
				for _, color := range *input.Colors {
					if err := tx.Create(&models.ProductColor{ProductID: product.ID, ColorNameAr: color}).Error; err != nil {
						return err
					}
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في تحديث المنتج"})
			return
		}

		var updated models.Product
		if err := db.Preload("Images").Preload("Colors").Preload("Category").
			First(&updated, product.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في تحديث المنتج"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
