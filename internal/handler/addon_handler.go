package handler

import (
	"go-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AddonHandler struct {
	service service.AddonService
}

func NewAddonHandler(s service.AddonService) *AddonHandler {
	return &AddonHandler{service: s}
}

func (h *AddonHandler) GetAddons(c *fiber.Ctx) error {
	addons, err := h.service.GetAddons()
	if err != nil {
		return respondError(c, err, "Addon not found", "Error fetching addons")
	}
	return c.JSON(addons)
}

func (h *AddonHandler) CreateAddon(c *fiber.Ctx) error {
	var req service.CreateAddonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	addon, err := h.service.CreateAddon(&req)
	if err != nil {
		return respondError(c, err, "Addon not found", "Error creating addon")
	}
	return c.Status(201).JSON(addon)
}

func (h *AddonHandler) DeleteAddon(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid addon ID"})
	}

	if err := h.service.DeleteAddon(id); err != nil {
		return respondError(c, err, "Addon not found", "Error deleting addon")
	}
	return c.SendStatus(204)
}
