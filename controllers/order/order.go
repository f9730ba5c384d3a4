package orderControllers

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

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID        *uint            `json:"productId"`
	Meters           decimal.Decimal  `json:"meters"`
	PricePerMeter    *decimal.Decimal `json:"pricePerMeter"`
	LineTotal        *decimal.Decimal `json:"lineTotal"`
	TitleSnapshotAr  string           `json:"titleSnapshotAr"`
	MaterialSnapshot string           `json:"materialSnapshot"`
}

type PlaceOrderRequest struct {
	validation.CheckoutForm
	Items          []OrderItemInput `json:"items"`
	SubtotalAmount *decimal.Decimal `json:"subtotalAmount"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusNew):
		return models.OrderStatusNew, nil
	case string(models.OrderStatusProcessing):
		return models.OrderStatusProcessing, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("حالة الطلب غير صالحة")
	}
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

// -------- Handlers --------

// PlaceOrderHandler accepts a customer checkout submission: validated
// customer fields plus frozen item snapshots. The customer data is
// re-validated here with the same canonical rules the client ran; the
// server is the authoritative gate. POST /api/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "بيانات الطلب غير صالحة"})
			return
		}

		if errs := validation.ValidateCheckout(req.CheckoutForm); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errs.First()})
			return
		}

		order := models.Order{
			FullName:       req.FullName,
			Phone:          req.Phone,
			City:           req.City,
			District:       req.District,
			Address:        req.Address,
			Notes:          req.Notes,
			Status:         models.OrderStatusNew,
			SubtotalAmount: toNullDecimal(req.SubtotalAmount),
		}
		for _, item := range req.Items {
			order.Items = append(order.Items, models.OrderItem{
				ProductID:        item.ProductID,
				Meters:           item.Meters,
				PricePerMeter:    toNullDecimal(item.PricePerMeter),
				LineTotal:        toNullDecimal(item.LineTotal),
				TitleSnapshotAr:  item.TitleSnapshotAr,
				MaterialSnapshot: item.MaterialSnapshot,
			})
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&order).Error
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في إنشاء الطلب"})
			return
		}

		c.JSON(http.StatusCreated, order)
	}
}

// GetAllOrdersHandler lists orders with their item snapshots, newest
// first. GET /api/admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في جلب الطلبات"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderByIDHandler returns a single order. GET /api/admin/orders/:id
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "معرّف الطلب غير صالح"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "الطلب غير موجود"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في جلب الطلب"})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatusHandler sets a new status from the enum. Any enum value
// is accepted regardless of the current status; the admin may move an
// order backwards or re-open a cancelled one. PATCH /api/admin/orders/:id
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "معرّف الطلب غير صالح"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "بيانات غير صالحة"})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "الطلب غير موجود"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في تحديث الطلب"})
			}
			return
		}

		if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في تحديث الطلب"})
			return
		}
		order.Status = newStatus
		c.JSON(http.StatusOK, order)
	}
}
