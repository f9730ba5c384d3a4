package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/qimma-sa/kitchens-api/models"
	"gorm.io/gorm"
)

// DeleteProduct removes a product and, via cascade, its images and colors.
// Existing order items keep their snapshots. DELETE /api/admin/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "معرّف المنتج غير صالح"})
			return
		}

		if err := db.Delete(&models.Product{}, id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في حذف المنتج"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
