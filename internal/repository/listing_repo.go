package repository

import (
	"go-catalog-api/internal/model"

	"gorm.io/gorm"
)

type ListingRepository interface {
	FindAll(typeID *uint) ([]model.Product, error)
}

type listingRepo struct {
	db *gorm.DB
}

func NewListingRepo(db *gorm.DB) ListingRepository {
	return &listingRepo{db}
}

// FindAll loads every product (or only one type's) with its type, variants,
// and linked addons eagerly attached, ascending by product id. The composite
// key on product_addons guarantees the addon set is already deduplicated.
func (r *listingRepo) FindAll(typeID *uint) ([]model.Product, error) {
	var products []model.Product
	q := r.db.
		Preload("Type").
		Preload("Variants").
		Preload("Addons").
		Order("id ASC")
	if typeID != nil {
		q = q.Where("product_type_id = ?", *typeID)
	}
	err := q.Find(&products).Error
	return products, err
}
