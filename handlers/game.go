// handlers/game.go
package handlers

import (
	"path/filepath"

	"findly/services"
	"findly/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func SetupGameRoutes(router fiber.Router, games *services.GameService, clues *services.ClueService) {

	router.Get("/games", func(c *fiber.Ctx) error {
		all, err := games.GetAll()
		if err != nil {
			return renderServerError(c)
		}
		return c.Render("games", fiber.Map{"games": all, "user": c.Locals("user")})
	})

	router.Get("/games/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusNotFound).Render("games", fiber.Map{"error": "Game not found"})
		}

		game, err := games.GetByID(uint(id))
		if err != nil {
			return renderServerError(c)
		}
		if game == nil {
			return c.Status(fiber.StatusNotFound).Render("games", fiber.Map{"error": "Game not found"})
		}

		return c.Render("game", fiber.Map{
			"game":           game,
			"showClueButton": false,
			"user":           c.Locals("user"),
		})
	})

	router.Post("/games", func(c *fiber.Ctx) error {
		var in services.GameInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create game", "cause": err.Error()})
		}
		game, err := games.Create(in)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create game", "cause": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(game)
	})

	router.Put("/games/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Game not found"})
		}
		var in services.GameInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update game", "cause": err.Error()})
		}
		ok, err := games.Update(uint(id), in)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update game", "cause": err.Error()})
		}
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Game not found or no changes made"})
		}
		return c.JSON(fiber.Map{"message": "Game updated successfully"})
	})

	router.Delete("/games/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Game not found"})
		}
		ok, err := games.Delete(uint(id))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete game", "cause": err.Error()})
		}
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Game not found"})
		}
		return c.JSON(fiber.Map{"message": "Game deleted successfully"})
	})

	// Answer submission. The reveal-clue button is offered only on a correct
	// answer; wrong answers can be retried without limit.
	router.Post("/games/:id/answer", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusNotFound).Render("games", fiber.Map{"game": nil, "message": "Game not found"})
		}

		type answerForm struct {
			Name string `json:"name" form:"name"`
		}
		var form answerForm
		if err := c.BodyParser(&form); err != nil {
			return renderServerError(c)
		}

		game, err := games.GetByID(uint(id))
		if err != nil {
			return renderServerError(c)
		}
		if game == nil {
			return c.Status(fiber.StatusNotFound).Render("games", fiber.Map{"game": nil, "message": "Game not found"})
		}

		correct, err := games.CheckAnswer(uint(id), form.Name)
		if err != nil {
			return renderServerError(c)
		}

		message := "Incorrect Answer! Try again..."
		if correct {
			message = "Correct Answer!"
		}
		return c.Render("game", fiber.Map{
			"game":           game,
			"message":        message,
			"showClueButton": correct,
			"user":           c.Locals("user"),
		})
	})

	// Clues for a game, shown once the reveal affordance is unlocked.
	router.Get("/games/:id/clues", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Game not found"})
		}
		found, err := clues.ForGame(uint(id))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch clues", "cause": err.Error()})
		}
		return c.JSON(found)
	})

	router.Post("/games/:id/cover", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Game not found"})
		}

		coverFile, err := c.FormFile("cover")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cover is required"})
		}

		ext := filepath.Ext(coverFile.Filename)
		if ext == "" {
			ext = ".png"
		}
		key := "covers/games/" + uuid.NewString() + ext
		url, err := utils.UploadCover(coverFile, key)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store cover", "cause": err.Error()})
		}

		ok, err := games.SetCover(uint(id), url)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update game", "cause": err.Error()})
		}
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Game not found"})
		}
		return c.JSON(fiber.Map{"cover_url": url})
	})
}
