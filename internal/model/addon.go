package model

import "github.com/shopspring/decimal"

type Addon struct {
	ID    uint            `gorm:"primaryKey" json:"id"`
	Name  string          `gorm:"type:varchar(255);not null" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
}
