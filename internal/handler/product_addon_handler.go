package handler

import (
	"go-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductAddonHandler struct {
	service service.ProductAddonService
}

func NewProductAddonHandler(s service.ProductAddonService) *ProductAddonHandler {
	return &ProductAddonHandler{service: s}
}

func (h *ProductAddonHandler) CreateLink(c *fiber.Ctx) error {
	var req service.LinkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	link, err := h.service.CreateLink(&req)
	if err != nil {
		return respondError(c, err, "Product-addon link not found", "Error creating product-addon link")
	}
	return c.Status(201).JSON(link)
}

func (h *ProductAddonHandler) GetAddonsByProduct(c *fiber.Ctx) error {
	productID, ok := parseID(c, "product_id")
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	addons, err := h.service.GetAddonsForProduct(productID)
	if err != nil {
		return respondError(c, err, "Product-addon link not found", "Error fetching addons for product")
	}
	return c.JSON(addons)
}

// DeleteLink takes the pair in the request body, mirroring CreateLink.
func (h *ProductAddonHandler) DeleteLink(c *fiber.Ctx) error {
	var req service.LinkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.DeleteLink(&req); err != nil {
		return respondError(c, err, "Product-addon link not found", "Error deleting product-addon link")
	}
	return c.SendStatus(204)
}
