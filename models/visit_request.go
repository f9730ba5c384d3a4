package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type VisitStatus string

const (
	VisitStatusNew       VisitStatus = "new"
	VisitStatusContacted VisitStatus = "contacted"
	VisitStatusScheduled VisitStatus = "scheduled"
	VisitStatusDone      VisitStatus = "done"
	VisitStatusCancelled VisitStatus = "cancelled"
)

type VisitRequest struct {
	ID                uint                `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName          string              `gorm:"not null" json:"fullName"`
	Phone             string              `gorm:"not null" json:"phone"`
	City              string              `gorm:"not null" json:"city"`
	District          string              `gorm:"not null" json:"district"`
	Address           string              `gorm:"not null" json:"address"`
	MaterialType      string              `gorm:"not null" json:"materialType"`
	ApproxMeters      decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"approxMeters"`
	Notes             string              `json:"notes"`
	PreferredDatetime string              `json:"preferredDatetime"`
	Status            VisitStatus         `gorm:"type:VARCHAR(20);not null;default:'new'" json:"status"`
	CreatedAt         time.Time           `json:"createdAt"`
}
