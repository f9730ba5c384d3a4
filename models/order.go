package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"        // just submitted by the customer
	OrderStatusProcessing OrderStatus = "processing" // being manufactured / quoted
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order is immutable after creation except for Status, which only admins
// change. Items are frozen snapshots of the cart at submission time so the
// order stays accurate even if the catalog changes later.
type Order struct {
	ID             uint                `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName       string              `gorm:"not null" json:"fullName"`
	Phone          string              `gorm:"not null" json:"phone"`
	City           string              `gorm:"not null" json:"city"`
	District       string              `gorm:"not null" json:"district"`
	Address        string              `gorm:"not null" json:"address"`
	Notes          string              `json:"notes"`
	Status         OrderStatus         `gorm:"type:VARCHAR(20);not null;default:'new'" json:"status"`
	SubtotalAmount decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"subtotalAmount"`
	Items          []OrderItem         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt      time.Time           `json:"createdAt"`
}

type OrderItem struct {
	ID               uint                `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID          uint                `gorm:"index;not null" json:"orderId"`
	ProductID        *uint               `json:"productId"`
	Meters           decimal.Decimal     `gorm:"type:numeric(10,2);not null" json:"meters"`
	PricePerMeter    decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"pricePerMeter"`
	LineTotal        decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"lineTotal"`
	TitleSnapshotAr  string              `gorm:"not null" json:"titleSnapshotAr"`
	MaterialSnapshot string              `gorm:"not null" json:"materialSnapshot"`
	CreatedAt        time.Time           `json:"createdAt"`
}
