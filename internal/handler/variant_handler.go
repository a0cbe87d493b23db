package handler

import (
	"go-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type VariantHandler struct {
	service service.VariantService
}

func NewVariantHandler(s service.VariantService) *VariantHandler {
	return &VariantHandler{service: s}
}

func (h *VariantHandler) GetVariants(c *fiber.Ctx) error {
	variants, err := h.service.GetVariants()
	if err != nil {
		return respondError(c, err, "Variant not found", "Error fetching variants")
	}
	return c.JSON(variants)
}

func (h *VariantHandler) GetVariant(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid variant ID"})
	}

	variant, err := h.service.GetVariant(id)
	if err != nil {
		return respondError(c, err, "Variant not found", "Error fetching variant")
	}
	return c.JSON(variant)
}

func (h *VariantHandler) CreateVariant(c *fiber.Ctx) error {
	var req service.CreateVariantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	variant, err := h.service.CreateVariant(&req)
	if err != nil {
		return respondError(c, err, "Variant not found", "Error creating variant")
	}
	return c.Status(201).JSON(variant)
}

func (h *VariantHandler) UpdateVariant(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid variant ID"})
	}

	var req service.UpdateVariantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	variant, err := h.service.UpdateVariant(id, &req)
	if err != nil {
		return respondError(c, err, "Variant not found", "Error updating variant")
	}
	return c.JSON(variant)
}

func (h *VariantHandler) DeleteVariant(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid variant ID"})
	}

	if err := h.service.DeleteVariant(id); err != nil {
		return respondError(c, err, "Variant not found", "Error deleting variant")
	}
	return c.SendStatus(204)
}
