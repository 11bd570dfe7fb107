// handlers/achievement.go
package handlers

import (
	"findly/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAchievementRoutes(router fiber.Router, achievements *services.AchievementService) {

	router.Get("/achievements", func(c *fiber.Ctx) error {
		all, err := achievements.GetAll()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch achievements", "cause": err.Error()})
		}
		return c.JSON(all)
	})

	router.Get("/achievements/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Achievement not found"})
		}
		achievement, err := achievements.GetByID(uint(id))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch achievement", "cause": err.Error()})
		}
		if achievement == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Achievement not found"})
		}
		return c.JSON(achievement)
	})

	router.Post("/achievements", func(c *fiber.Ctx) error {
		var in services.AchievementInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create achievement", "cause": err.Error()})
		}
		achievement, err := achievements.Create(in)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create achievement", "cause": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(achievement)
	})

	router.Put("/achievements/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Achievement not found"})
		}
		var in services.AchievementInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update achievement", "cause": err.Error()})
		}
		ok, err := achievements.Update(uint(id), in)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update achievement", "cause": err.Error()})
		}
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Achievement not found or no changes made"})
		}
		return c.JSON(fiber.Map{"message": "Achievement updated successfully"})
	})

	router.Delete("/achievements/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Achievement not found"})
		}
		ok, err := achievements.Delete(uint(id))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete achievement", "cause": err.Error()})
		}
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Achievement not found"})
		}
		return c.JSON(fiber.Map{"message": "Achievement deleted successfully"})
	})
}
