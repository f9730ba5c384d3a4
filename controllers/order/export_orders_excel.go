package orderControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/qimma-sa/kitchens-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportOrdersToExcel downloads all orders as a spreadsheet, one row per
// item snapshot. GET /api/admin/orders/export-excel
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في جلب الطلبات"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في إنشاء الملف"})
			return
		}

		headers := []string{
			"OrderID", "FullName", "Phone", "City", "District", "Address",
			"Status", "Subtotal", "Item", "Material", "Meters", "PricePerMeter",
			"LineTotal", "Notes", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			subtotal := ""
			if o.SubtotalAmount.Valid {
				subtotal = o.SubtotalAmount.Decimal.StringFixed(2)
			}
			if len(o.Items) == 0 {
				row := sheet.AddRow()
				fillOrderCells(row, o, subtotal)
				for i := 0; i < 5; i++ {
					row.AddCell()
				}
				row.AddCell().SetValue(o.Notes)
				row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
				continue
			}
			for _, item := range o.Items {
				row := sheet.AddRow()
				fillOrderCells(row, o, subtotal)
				row.AddCell().SetValue(item.TitleSnapshotAr)
				row.AddCell().SetValue(item.MaterialSnapshot)
				row.AddCell().SetValue(item.Meters.String())
				if item.PricePerMeter.Valid {
					row.AddCell().SetValue(item.PricePerMeter.Decimal.StringFixed(2))
				} else {
					row.AddCell()
				}
				if item.LineTotal.Valid {
					row.AddCell().SetValue(item.LineTotal.Decimal.StringFixed(2))
				} else {
					row.AddCell()
				}
				row.AddCell().SetValue(o.Notes)
				row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
			}
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "حدث خطأ في كتابة الملف"})
			return
		}
	}
}

func fillOrderCells(row *xlsx.Row, o models.Order, subtotal string) {
	row.AddCell().SetValue(strconv.Itoa(int(o.ID)))
	row.AddCell().SetValue(o.FullName)
	row.AddCell().SetValue(o.Phone)
	row.AddCell().SetValue(o.City)
	row.AddCell().SetValue(o.District)
	row.AddCell().SetValue(o.Address)
	row.AddCell().SetValue(string(o.Status))
	row.AddCell().SetValue(subtotal)
}
