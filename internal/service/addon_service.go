package service

import (
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/pkg/validator"

	"github.com/shopspring/decimal"
)

type CreateAddonRequest struct {
	Name  *string          `json:"name" validate:"required"`
	Price *decimal.Decimal `json:"price" validate:"required"`
}

type AddonService interface {
	CreateAddon(req *CreateAddonRequest) (*model.Addon, error)
	GetAddons() ([]model.Addon, error)
	DeleteAddon(id uint) error
}

type addonService struct {
	addonRepo repository.AddonRepository
}

func NewAddonService(addonRepo repository.AddonRepository) AddonService {
	return &addonService{addonRepo: addonRepo}
}

func (s *addonService) CreateAddon(req *CreateAddonRequest) (*model.Addon, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Field: errs[0].FailedField}
	}

	addon := &model.Addon{
		Name:  *req.Name,
		Price: *req.Price,
	}
	if err := s.addonRepo.Create(addon); err != nil {
		return nil, err
	}
	return addon, nil
}

func (s *addonService) GetAddons() ([]model.Addon, error) {
	return s.addonRepo.FindAll()
}

func (s *addonService) DeleteAddon(id uint) error {
	rows, err := s.addonRepo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
