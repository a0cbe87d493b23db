package service

import (
	"errors"

	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/pkg/validator"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateVariantRequest struct {
	ProductID *uint            `json:"product_id" validate:"required"`
	Size      *string          `json:"size"`
	Color     *string          `json:"color"`
	Price     *decimal.Decimal `json:"price" validate:"required"`
	Stock     *int             `json:"stock" validate:"required"`
	SKU       *string          `json:"sku" validate:"required"`
}

type UpdateVariantRequest struct {
	ProductID *uint            `json:"product_id"`
	Size      *string          `json:"size"`
	Color     *string          `json:"color"`
	Price     *decimal.Decimal `json:"price"`
	Stock     *int             `json:"stock"`
	SKU       *string          `json:"sku"`
}

type VariantService interface {
	CreateVariant(req *CreateVariantRequest) (*model.Variant, error)
	GetVariants() ([]model.Variant, error)
	GetVariant(id uint) (*model.Variant, error)
	UpdateVariant(id uint, req *UpdateVariantRequest) (*model.Variant, error)
	DeleteVariant(id uint) error
}

type variantService struct {
	variantRepo repository.VariantRepository
}

func NewVariantService(variantRepo repository.VariantRepository) VariantService {
	return &variantService{variantRepo: variantRepo}
}

func (s *variantService) CreateVariant(req *CreateVariantRequest) (*model.Variant, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Field: errs[0].FailedField}
	}

	variant := &model.Variant{
		ProductID: *req.ProductID,
		Price:     *req.Price,
		Stock:     *req.Stock,
		SKU:       *req.SKU,
	}
	if req.Size != nil {
		variant.Size = *req.Size
	}
	if req.Color != nil {
		variant.Color = *req.Color
	}

	if err := s.variantRepo.Create(variant); err != nil {
		return nil, err
	}
	return variant, nil
}

func (s *variantService) GetVariants() ([]model.Variant, error) {
	return s.variantRepo.FindAll()
}

func (s *variantService) GetVariant(id uint) (*model.Variant, error) {
	variant, err := s.variantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return variant, nil
}

func (s *variantService) UpdateVariant(id uint, req *UpdateVariantRequest) (*model.Variant, error) {
	existing, err := s.variantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.ProductID != nil {
		existing.ProductID = *req.ProductID
	}
	if req.Size != nil {
		existing.Size = *req.Size
	}
	if req.Color != nil {
		existing.Color = *req.Color
	}
	if req.Price != nil {
		existing.Price = *req.Price
	}
	if req.Stock != nil {
		existing.Stock = *req.Stock
	}
	if req.SKU != nil {
		existing.SKU = *req.SKU
	}

	if err := s.variantRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *variantService) DeleteVariant(id uint) error {
	rows, err := s.variantRepo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
