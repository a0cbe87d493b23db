package repository

import (
	"go-catalog-api/internal/model"

	"gorm.io/gorm"
)

type VariantRepository interface {
	Create(variant *model.Variant) error
	FindAll() ([]model.Variant, error)
	FindByID(id uint) (*model.Variant, error)
	Update(variant *model.Variant) error
	Delete(id uint) (int64, error)
}

type variantRepo struct {
	db *gorm.DB
}

func NewVariantRepo(db *gorm.DB) VariantRepository {
	return &variantRepo{db}
}

func (r *variantRepo) Create(variant *model.Variant) error {
	return r.db.Create(variant).Error
}

func (r *variantRepo) FindAll() ([]model.Variant, error) {
	var variants []model.Variant
	err := r.db.Find(&variants).Error
	return variants, err
}

func (r *variantRepo) FindByID(id uint) (*model.Variant, error) {
	var variant model.Variant
	err := r.db.First(&variant, "id = ?", id).Error
	return &variant, err
}

func (r *variantRepo) Update(variant *model.Variant) error {
	return r.db.Save(variant).Error
}

func (r *variantRepo) Delete(id uint) (int64, error) {
	res := r.db.Delete(&model.Variant{}, id)
	return res.RowsAffected, res.Error
}
