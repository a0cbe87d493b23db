package service

import (
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
)

type ListingService interface {
	GetListings(typeID *uint) ([]model.ProductListing, error)
}

type listingService struct {
	listingRepo repository.ListingRepository
}

func NewListingService(listingRepo repository.ListingRepository) ListingService {
	return &listingService{listingRepo: listingRepo}
}

// GetListings materializes the catalog read view. Products with no variants or
// no addons come back with empty collections, never null.
func (s *listingService) GetListings(typeID *uint) ([]model.ProductListing, error) {
	products, err := s.listingRepo.FindAll(typeID)
	if err != nil {
		return nil, err
	}

	listings := make([]model.ProductListing, 0, len(products))
	for _, p := range products {
		listing := model.ProductListing{
			ID:            p.ID,
			Name:          p.Name,
			Description:   p.Description,
			ProductTypeID: p.ProductTypeID,
			ImageURLs:     p.ImageURLs,
			CreatedAt:     p.CreatedAt,
			Variants:      p.Variants,
			Addons:        p.Addons,
		}
		if p.Type != nil {
			listing.ProductType = p.Type.Name
			listing.SupportsAddons = p.Type.SupportsAddons
		}
		if listing.Variants == nil {
			listing.Variants = []model.Variant{}
		}
		if listing.Addons == nil {
			listing.Addons = []model.Addon{}
		}
		listings = append(listings, listing)
	}
	return listings, nil
}
