package handler

import (
	"go-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductTypeHandler struct {
	service service.ProductTypeService
}

func NewProductTypeHandler(s service.ProductTypeService) *ProductTypeHandler {
	return &ProductTypeHandler{service: s}
}

func (h *ProductTypeHandler) GetTypes(c *fiber.Ctx) error {
	types, err := h.service.GetTypes()
	if err != nil {
		return respondError(c, err, "Product type not found", "Error fetching product types")
	}
	return c.JSON(types)
}

func (h *ProductTypeHandler) CreateType(c *fiber.Ctx) error {
	var req service.CreateTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	t, err := h.service.CreateType(&req)
	if err != nil {
		return respondError(c, err, "Product type not found", "Error creating product type")
	}
	return c.Status(201).JSON(t)
}

func (h *ProductTypeHandler) DeleteType(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product type ID"})
	}

	if err := h.service.DeleteType(id); err != nil {
		return respondError(c, err, "Product type not found", "Error deleting product type")
	}
	return c.SendStatus(204)
}
