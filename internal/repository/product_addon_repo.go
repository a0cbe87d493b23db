package repository

import (
	"go-catalog-api/internal/model"

	"gorm.io/gorm"
)

type ProductAddonRepository interface {
	Create(link *model.ProductAddon) error
	FindAddonsByProduct(productID uint) ([]model.Addon, error)
	Delete(productID, addonID uint) (int64, error)
}

type productAddonRepo struct {
	db *gorm.DB
}

func NewProductAddonRepo(db *gorm.DB) ProductAddonRepository {
	return &productAddonRepo{db}
}

func (r *productAddonRepo) Create(link *model.ProductAddon) error {
	return r.db.Create(link).Error
}

func (r *productAddonRepo) FindAddonsByProduct(productID uint) ([]model.Addon, error) {
	var addons []model.Addon
	err := r.db.
		Joins("JOIN product_addons pa ON pa.addon_id = addons.id").
		Where("pa.product_id = ?", productID).
		Find(&addons).Error
	return addons, err
}

func (r *productAddonRepo) Delete(productID, addonID uint) (int64, error) {
	res := r.db.
		Where("product_id = ? AND addon_id = ?", productID, addonID).
		Delete(&model.ProductAddon{})
	return res.RowsAffected, res.Error
}
