package model

// ProductType categorizes products. SupportsAddons marks categories whose
// products may be sold with add-ons; the client hides the add-on picker for
// everything else.
type ProductType struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"type:varchar(100);not null" json:"name"`
	SupportsAddons bool   `gorm:"default:false" json:"supports_addons"`
}
