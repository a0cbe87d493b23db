package handler

import (
	"errors"
	"log"
	"strconv"

	"go-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// parseID parses a numeric id path segment.
func parseID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors onto the API contract: 400 for a missing
// required field, 404 for an absent id or link, 500 otherwise. Store failure
// detail is logged server-side; callers get the generic message only.
func respondError(c *fiber.Ctx, err error, notFoundMsg, storeErrMsg string) error {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return c.Status(400).JSON(fiber.Map{"error": verr.Error()})
	}
	if errors.Is(err, service.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": notFoundMsg})
	}
	log.Printf("%s: %v", storeErrMsg, err)
	return c.Status(500).SendString(storeErrMsg)
}
