package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material types offered by the workshop. VisitRequest.MaterialType and
// Product.MaterialType must be one of these.
const (
	MaterialAluminum = "ألمنيوم"
	MaterialWood     = "خشب"
	MaterialSteel    = "صاج"
	MaterialFormica  = "فورميكا"
)

var MaterialTypes = []string{MaterialAluminum, MaterialWood, MaterialSteel, MaterialFormica}

func IsValidMaterialType(s string) bool {
	for _, m := range MaterialTypes {
		if m == s {
			return true
		}
	}
	return false
}

type Product struct {
	ID            uint                `gorm:"primaryKey;autoIncrement" json:"id"`
	TitleAr       string              `gorm:"not null" json:"titleAr"`
	DescriptionAr string              `gorm:"not null" json:"descriptionAr"`
	CategoryID    *uint               `json:"categoryId"`
	Category      *Category           `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	MaterialType  string              `gorm:"not null" json:"materialType"`
	PricePerMeter decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"pricePerMeter"`
	IsCustomPrice bool                `gorm:"not null;default:false" json:"isCustomPrice"`
	IsFeatured    bool                `gorm:"not null;default:false" json:"isFeatured"`
	Images        []ProductImage      `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	Colors        []ProductColor      `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"colors"`
	CreatedAt     time.Time           `json:"createdAt"`
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"productId"`
	URL       string `gorm:"not null" json:"url"`
}

type ProductColor struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID   uint   `gorm:"index;not null" json:"productId"`
	ColorNameAr string `gorm:"not null" json:"colorNameAr"`
}
