package repository

import (
	"go-catalog-api/internal/model"

	"gorm.io/gorm"
)

type ProductTypeRepository interface {
	Create(t *model.ProductType) error
	FindAll() ([]model.ProductType, error)
	Delete(id uint) (int64, error)
}

type productTypeRepo struct {
	db *gorm.DB
}

func NewProductTypeRepo(db *gorm.DB) ProductTypeRepository {
	return &productTypeRepo{db}
}

func (r *productTypeRepo) Create(t *model.ProductType) error {
	return r.db.Create(t).Error
}

func (r *productTypeRepo) FindAll() ([]model.ProductType, error) {
	var types []model.ProductType
	err := r.db.Find(&types).Error
	return types, err
}

// Delete reports how many rows matched so the service can distinguish
// "removed" from "already absent".
func (r *productTypeRepo) Delete(id uint) (int64, error) {
	res := r.db.Delete(&model.ProductType{}, id)
	return res.RowsAffected, res.Error
}
