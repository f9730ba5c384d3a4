package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/qimma-sa/kitchens-api/models"
	"gorm.io/gorm"
)

// GetProductByID returns a single product with its images, colors and
// category. URL param: /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "معرّف المنتج غير صالح"})
			return
		}

		var product models.Product
		if err := db.Preload("Images").Preload("Colors").Preload("Category").
			First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "المنتج غير موجود"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في جلب المنتج"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
