package repository

import (
	"go-catalog-api/internal/model"

	"gorm.io/gorm"
)

type AddonRepository interface {
	Create(addon *model.Addon) error
	FindAll() ([]model.Addon, error)
	Delete(id uint) (int64, error)
}

type addonRepo struct {
	db *gorm.DB
}

func NewAddonRepo(db *gorm.DB) AddonRepository {
	return &addonRepo{db}
}

func (r *addonRepo) Create(addon *model.Addon) error {
	return r.db.Create(addon).Error
}

func (r *addonRepo) FindAll() ([]model.Addon, error) {
	var addons []model.Addon
	err := r.db.Find(&addons).Error
	return addons, err
}

func (r *addonRepo) Delete(id uint) (int64, error) {
	res := r.db.Delete(&model.Addon{}, id)
	return res.RowsAffected, res.Error
}
