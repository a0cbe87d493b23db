package model

import (
	"time"

	"gorm.io/datatypes"
)

type Product struct {
	ID            uint                        `gorm:"primaryKey" json:"id"`
	Name          string                      `gorm:"type:varchar(255);not null" json:"name"`
	Description   *string                     `gorm:"type:text" json:"description"`
	ProductTypeID uint                        `gorm:"not null;index" json:"product_type_id"`
	ImageURLs     datatypes.JSONSlice[string] `json:"image_urls"`
	CreatedAt     time.Time                   `json:"created_at"`

	// Relasi
	Type     *ProductType `gorm:"foreignKey:ProductTypeID" json:"-"`
	Variants []Variant    `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
	Addons   []Addon      `gorm:"many2many:product_addons" json:"addons,omitempty"`
}
