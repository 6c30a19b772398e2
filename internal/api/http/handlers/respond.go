package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/siga-edu/academic-service/internal/auth"
)

func created(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": message, "data": data})
}

func ok(c *fiber.Ctx, message string, data any) error {
	return c.JSON(fiber.Map{"message": message, "data": data})
}

func okData(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"data": data})
}

func okMessage(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"message": message})
}

// actorID resolves the authenticated user for audit purposes. Public
// endpoints yield an empty actor.
func actorID(c *fiber.Ctx) string {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return ""
	}
	return identity.UserID
}
