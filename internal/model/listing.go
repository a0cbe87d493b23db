package model

import (
	"time"

	"gorm.io/datatypes"
)

// ProductListing is the read view served by GET /product-listings: a product
// enriched with its type name and embedded variants/addons. It is materialized
// per request and never persisted. Variants and Addons are always non-nil so
// clients see [] instead of null.
type ProductListing struct {
	ID             uint                        `json:"id"`
	Name           string                      `json:"name"`
	Description    *string                     `json:"description"`
	ProductTypeID  uint                        `json:"product_type_id"`
	ImageURLs      datatypes.JSONSlice[string] `json:"image_urls"`
	CreatedAt      time.Time                   `json:"created_at"`
	ProductType    string                      `json:"product_type"`
	SupportsAddons bool                        `json:"supports_addons"`
	Variants       []Variant                   `json:"variants"`
	Addons         []Addon                     `json:"addons"`
}
