package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/qimma-sa/kitchens-api/models"
	"gorm.io/gorm"
)

type CategoryInput struct {
	NameAr string `json:"nameAr" binding:"required"`
	Slug   string `json:"slug" binding:"required"`
}

// GetAllCategories returns all categories, newest first.
// GET /api/categories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("created_at DESC").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في جلب التصنيفات"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// CreateCategory creates a category. POST /api/admin/categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "بيانات التصنيف غير صالحة"})
			return
		}

		category := models.Category{NameAr: input.NameAr, Slug: input.Slug}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في إنشاء التصنيف"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// UpdateCategory applies a partial update. PATCH /api/admin/categories/:id
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "معرّف التصنيف غير صالح"})
			return
		}

		var input struct {
			NameAr *string `json:"nameAr"`
			Slug   *string `json:"slug"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "بيانات التصنيف غير صالحة"})
			return
		}

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "التصنيف غير موجود"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في تحديث التصنيف"})
			}
			return
		}

		if input.NameAr != nil {
			category.NameAr = *input.NameAr
		}
		if input.Slug != nil {
			category.Slug = *input.Slug
		}
		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في تحديث التصنيف"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory removes a category; products keep a dangling category id
// set to NULL by the foreign key. DELETE /api/admin/categories/:id
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "معرّف التصنيف غير صالح"})
			return
		}

		if err := db.Delete(&models.Category{}, id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في حذف التصنيف"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
