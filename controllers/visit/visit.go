package visitControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/qimma-sa/kitchens-api/models"
	"github.com/qimma-sa/kitchens-api/validation"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type UpdateVisitStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func mapVisitStatus(status string) (models.VisitStatus, error) {
	switch strings.ToLower(status) {
	case string(models.VisitStatusNew):
		return models.VisitStatusNew, nil
	case string(models.VisitStatusContacted):
		return models.VisitStatusContacted, nil
	case string(models.VisitStatusScheduled):
		return models.VisitStatusScheduled, nil
	case string(models.VisitStatusDone):
		return models.VisitStatusDone, nil
	case string(models.VisitStatusCancelled):
		return models.VisitStatusCancelled, nil
	default:
		return "", errors.New("حالة الطلب غير صالحة")
	}
}

// CreateVisitRequestHandler books an on-site measurement visit. Same
// canonical validation as the client form. POST /api/visit-requests
func CreateVisitRequestHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form validation.VisitRequestForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "بيانات الطلب غير صالحة"})
			return
		}

		if errs := validation.ValidateVisitRequest(form); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errs.First()})
			return
		}

		request := models.VisitRequest{
			FullName:          form.FullName,
			Phone:             form.Phone,
			City:              form.City,
			District:          form.District,
			Address:           form.Address,
			MaterialType:      form.MaterialType,
			Notes:             form.Notes,
			PreferredDatetime: form.PreferredDatetime,
			Status:            models.VisitStatusNew,
		}
		if form.ApproxMeters != "" {
			// Shape already checked by the validator.
			if d, err := decimal.NewFromString(form.ApproxMeters); err == nil {
				request.ApproxMeters = decimal.NullDecimal{Decimal: d, Valid: true}
			}
		}

		if err := db.Create(&request).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في إرسال الطلب"})
			return
		}

		c.JSON(http.StatusCreated, request)
	}
}

// GetAllVisitRequestsHandler lists visit requests, newest first.
// GET /api/admin/visit-requests
func GetAllVisitRequestsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var requests []models.VisitRequest
		if err := db.Order("created_at DESC").Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في جلب الطلبات"})
			return
		}
		c.JSON(http.StatusOK, requests)
	}
}

// UpdateVisitStatusHandler sets a new status from the enum; like orders,
// any enum value is accepted regardless of the current one.
// PATCH /api/admin/visit-requests/:id
func UpdateVisitStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "معرّف الطلب غير صالح"})
			return
		}

		var req UpdateVisitStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "بيانات غير صالحة"})
			return
		}
		newStatus, err := mapVisitStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var request models.VisitRequest
		if err := db.First(&request, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "الطلب غير موجود"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في تحديث الطلب"})
			}
			return
		}

		if err := db.Model(&request).Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في تحديث الطلب"})
			return
		}
		request.Status = newStatus
		c.JSON(http.StatusOK, request)
	}
}
