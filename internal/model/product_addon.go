package model

// ProductAddon links a product to an add-on. The composite primary key keeps
// the pair unique, so a listing can never carry duplicate add-ons.
type ProductAddon struct {
	ProductID uint `gorm:"primaryKey" json:"product_id"`
	AddonID   uint `gorm:"primaryKey" json:"addon_id"`
}
