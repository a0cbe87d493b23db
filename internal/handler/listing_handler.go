package handler

import (
	"strconv"

	"go-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ListingHandler struct {
	service service.ListingService
}

func NewListingHandler(s service.ListingService) *ListingHandler {
	return &ListingHandler{service: s}
}

// GetListings serves the aggregated catalog view, optionally filtered by the
// typeId query parameter.
func (h *ListingHandler) GetListings(c *fiber.Ctx) error {
	var typeID *uint
	if raw := c.Query("typeId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid typeId"})
		}
		v := uint(parsed)
		typeID = &v
	}

	listings, err := h.service.GetListings(typeID)
	if err != nil {
		return respondError(c, err, "Listing not found", "Error fetching product listings")
	}
	return c.JSON(listings)
}
