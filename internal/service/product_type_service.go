package service

import (
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/pkg/validator"
)

type CreateTypeRequest struct {
	Name           *string `json:"name" validate:"required"`
	SupportsAddons bool    `json:"supports_addons"`
}

type ProductTypeService interface {
	CreateType(req *CreateTypeRequest) (*model.ProductType, error)
	GetTypes() ([]model.ProductType, error)
	DeleteType(id uint) error
}

type productTypeService struct {
	typeRepo repository.ProductTypeRepository
}

func NewProductTypeService(typeRepo repository.ProductTypeRepository) ProductTypeService {
	return &productTypeService{typeRepo: typeRepo}
}

func (s *productTypeService) CreateType(req *CreateTypeRequest) (*model.ProductType, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Field: errs[0].FailedField}
	}

	t := &model.ProductType{
		Name:           *req.Name,
		SupportsAddons: req.SupportsAddons,
	}
	if err := s.typeRepo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *productTypeService) GetTypes() ([]model.ProductType, error) {
	return s.typeRepo.FindAll()
}

func (s *productTypeService) DeleteType(id uint) error {
	rows, err := s.typeRepo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
