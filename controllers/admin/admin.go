package adminController

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/qimma-sa/kitchens-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 7 * 24 * time.Hour

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/admin/login
func Login(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "البريد وكلمة المرور مطلوبان"})
			return
		}

		var admin models.AdminUser
		if err := db.Where("email = ?", req.Email).First(&admin).Error; err != nil {
			// Same message as a wrong password, so the response does not
			// reveal which accounts exist.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "بيانات غير صحيحة"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "بيانات غير صحيحة"})
			return
		}

		claims := jwt.MapClaims{
			"id":    admin.ID,
			"email": admin.Email,
			"jti":   uuid.NewString(),
			"exp":   time.Now().Add(tokenTTL).Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(jwtSecret))
		if err != nil {
			log.Println("❌ Failed to sign admin token:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في تسجيل الدخول"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": signed})
	}
}

// GET /api/admin/stats
func Stats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalProducts, totalOrders, totalVisits, newThisWeek int64

		if err := db.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في جلب الإحصائيات"})
			return
		}
		if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في جلب الإحصائيات"})
			return
		}
		if err := db.Model(&models.VisitRequest{}).Count(&totalVisits).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في جلب الإحصائيات"})
			return
		}
		oneWeekAgo := time.Now().AddDate(0, 0, -7)
		if err := db.Model(&models.VisitRequest{}).
			Where("created_at >= ?", oneWeekAgo).
			Count(&newThisWeek).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في جلب الإحصائيات"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"totalProducts":       totalProducts,
			"totalOrders":         totalOrders,
			"totalVisitRequests":  totalVisits,
			"newRequestsThisWeek": newThisWeek,
		})
	}
}
