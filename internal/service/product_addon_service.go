package service

import (
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/pkg/validator"
)

// LinkRequest carries a product/addon pair, used for both create and delete.
type LinkRequest struct {
	ProductID *uint `json:"product_id" validate:"required"`
	AddonID   *uint `json:"addon_id" validate:"required"`
}

type ProductAddonService interface {
	CreateLink(req *LinkRequest) (*model.ProductAddon, error)
	GetAddonsForProduct(productID uint) ([]model.Addon, error)
	DeleteLink(req *LinkRequest) error
}

type productAddonService struct {
	linkRepo repository.ProductAddonRepository
}

func NewProductAddonService(linkRepo repository.ProductAddonRepository) ProductAddonService {
	return &productAddonService{linkRepo: linkRepo}
}

func (s *productAddonService) CreateLink(req *LinkRequest) (*model.ProductAddon, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Field: errs[0].FailedField}
	}

	link := &model.ProductAddon{
		ProductID: *req.ProductID,
		AddonID:   *req.AddonID,
	}
	if err := s.linkRepo.Create(link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *productAddonService) GetAddonsForProduct(productID uint) ([]model.Addon, error) {
	addons, err := s.linkRepo.FindAddonsByProduct(productID)
	if err != nil {
		return nil, err
	}
	if addons == nil {
		addons = []model.Addon{}
	}
	return addons, nil
}

func (s *productAddonService) DeleteLink(req *LinkRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Field: errs[0].FailedField}
	}

	rows, err := s.linkRepo.Delete(*req.ProductID, *req.AddonID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
