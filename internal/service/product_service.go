package service

import (
	"errors"

	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/pkg/validator"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Pointer fields distinguish "absent" from an explicit zero value; only absent
// required fields are rejected.
type CreateProductRequest struct {
	Name          *string  `json:"name" validate:"required"`
	ProductTypeID *uint    `json:"product_type_id" validate:"required"`
	Description   *string  `json:"description"`
	ImageURLs     []string `json:"image_urls"`
}

type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	ProductTypeID *uint    `json:"product_type_id"`
	Description   *string  `json:"description"`
	ImageURLs     []string `json:"image_urls"`
}

type ProductService interface {
	CreateProduct(req *CreateProductRequest) (*model.Product, error)
	GetProducts() ([]model.Product, error)
	GetProduct(id uint) (*model.Product, error)
	UpdateProduct(id uint, req *UpdateProductRequest) (*model.Product, error)
	DeleteProduct(id uint) error
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) CreateProduct(req *CreateProductRequest) (*model.Product, error) {
	// Validasi input dasar
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Field: errs[0].FailedField}
	}

	product := &model.Product{
		Name:          *req.Name,
		ProductTypeID: *req.ProductTypeID,
		Description:   req.Description,
	}
	if req.ImageURLs != nil {
		product.ImageURLs = datatypes.JSONSlice[string](req.ImageURLs)
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) GetProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *productService) GetProduct(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

// UpdateProduct applies COALESCE semantics: fields absent from the request
// keep their stored value.
func (s *productService) UpdateProduct(id uint, req *UpdateProductRequest) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.ProductTypeID != nil {
		existing.ProductTypeID = *req.ProductTypeID
	}
	if req.Description != nil {
		existing.Description = req.Description
	}
	if req.ImageURLs != nil {
		existing.ImageURLs = datatypes.JSONSlice[string](req.ImageURLs)
	}

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *productService) DeleteProduct(id uint) error {
	rows, err := s.productRepo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
