// handlers/treasure.go
package handlers

import (
	"path/filepath"

	"findly/services"
	"findly/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func SetupTreasureRoutes(router fiber.Router, treasures *services.TreasureService, clues *services.ClueService) {

	router.Get("/treasures", func(c *fiber.Ctx) error {
		all, err := treasures.GetAll()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch treasures", "cause": err.Error()})
		}
		return c.JSON(all)
	})

	router.Get("/treasures/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Treasure not found"})
		}
		treasure, err := treasures.GetByID(uint(id))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch treasure", "cause": err.Error()})
		}
		if treasure == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Treasure not found"})
		}
		return c.JSON(treasure)
	})

	router.Post("/treasures", func(c *fiber.Ctx) error {
		var in services.TreasureInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create treasure", "cause": err.Error()})
		}
		treasure, err := treasures.Create(in)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create treasure", "cause": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(treasure)
	})

	router.Put("/treasures/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Treasure not found"})
		}
		var in services.TreasureInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update treasure", "cause": err.Error()})
		}
		ok, err := treasures.Update(uint(id), in)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update treasure", "cause": err.Error()})
		}
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Treasure not found or no changes made"})
		}
		return c.JSON(fiber.Map{"message": "Treasure updated successfully"})
	})

	router.Delete("/treasures/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Treasure not found"})
		}
		ok, err := treasures.Delete(uint(id))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete treasure", "cause": err.Error()})
		}
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Treasure not found"})
		}
		return c.JSON(fiber.Map{"message": "Treasure deleted successfully"})
	})

	router.Post("/treasures/:id/cover", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Treasure not found"})
		}
		coverFile, err := c.FormFile("cover")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cover is required"})
		}

		ext := filepath.Ext(coverFile.Filename)
		if ext == "" {
			ext = ".png"
		}
		key := "covers/treasures/" + uuid.NewString() + ext
		url, err := utils.UploadCover(coverFile, key)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store cover", "cause": err.Error()})
		}

		ok, err := treasures.SetCover(uint(id), url)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update treasure", "cause": err.Error()})
		}
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Treasure not found"})
		}
		return c.JSON(fiber.Map{"cover_url": url})
	})

	// Clues are their own CRUD group.
	router.Get("/clues", func(c *fiber.Ctx) error {
		all, err := clues.GetAll()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch clues", "cause": err.Error()})
		}
		return c.JSON(all)
	})

	router.Get("/clues/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Clue not found"})
		}
		clue, err := clues.GetByID(uint(id))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch clue", "cause": err.Error()})
		}
		if clue == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Clue not found"})
		}
		return c.JSON(clue)
	})

	router.Post("/clues", func(c *fiber.Ctx) error {
		var in services.ClueInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create clue", "cause": err.Error()})
		}
		clue, err := clues.Create(in)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create clue", "cause": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(clue)
	})

	router.Put("/clues/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Clue not found"})
		}
		var in services.ClueInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update clue", "cause": err.Error()})
		}
		ok, err := clues.Update(uint(id), in)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update clue", "cause": err.Error()})
		}
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Clue not found or no changes made"})
		}
		return c.JSON(fiber.Map{"message": "Clue updated successfully"})
	})

	router.Delete("/clues/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Clue not found"})
		}
		ok, err := clues.Delete(uint(id))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete clue", "cause": err.Error()})
		}
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Clue not found"})
		}
		return c.JSON(fiber.Map{"message": "Clue deleted successfully"})
	})
}
