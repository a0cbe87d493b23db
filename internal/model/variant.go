package model

import "github.com/shopspring/decimal"

// Variant is one purchasable configuration of a product.
type Variant struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	ProductID uint            `gorm:"not null;index" json:"product_id"`
	Size      string          `gorm:"type:varchar(50)" json:"size"`
	Color     string          `gorm:"type:varchar(50)" json:"color"`
	Price     decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	Stock     int             `gorm:"not null;default:0" json:"stock"`
	SKU       string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"sku"`
}

func (Variant) TableName() string {
	return "product_variants"
}
