// handlers/links.go
package handlers

import (
	"findly/models"
	"findly/services"

	"github.com/gofiber/fiber/v2"
)

// SetupLinkRoutes exposes the four association tables as plain JSON CRUD
// groups, mirroring the primary-entity routes.
func SetupLinkRoutes(router fiber.Router, links *services.LinkService) {

	// games-users
	router.Get("/games-users", func(c *fiber.Ctx) error {
		all, err := links.GetAllGameUsers()
		if err != nil {
			return jsonFetchError(c, "games-users", err)
		}
		return c.JSON(all)
	})
	router.Get("/games-users/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return jsonNotFound(c, "Link")
		}
		link, err := links.GetGameUserByID(uint(id))
		if err != nil {
			return jsonFetchError(c, "games-users", err)
		}
		if link == nil {
			return jsonNotFound(c, "Link")
		}
		return c.JSON(link)
	})
	router.Post("/games-users", func(c *fiber.Ctx) error {
		var link models.GameUser
		if err := c.BodyParser(&link); err != nil {
			return jsonFetchError(c, "games-users", err)
		}
		if err := links.CreateGameUser(&link); err != nil {
			return jsonFetchError(c, "games-users", err)
		}
		return c.Status(fiber.StatusCreated).JSON(link)
	})
	router.Put("/games-users/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return jsonNotFound(c, "Link")
		}
		var link models.GameUser
		if err := c.BodyParser(&link); err != nil {
			return jsonFetchError(c, "games-users", err)
		}
		ok, err := links.UpdateGameUser(uint(id), link)
		if err != nil {
			return jsonFetchError(c, "games-users", err)
		}
		if !ok {
			return jsonNotFound(c, "Link")
		}
		return c.JSON(fiber.Map{"message": "Link updated successfully"})
	})
	router.Delete("/games-users/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return jsonNotFound(c, "Link")
		}
		ok, err := links.DeleteGameUser(uint(id))
		if err != nil {
			return jsonFetchError(c, "games-users", err)
		}
		if !ok {
			return jsonNotFound(c, "Link")
		}
		return c.JSON(fiber.Map{"message": "Link deleted successfully"})
	})

	// users-treasures
	router.Get("/users-treasures", func(c *fiber.Ctx) error {
		all, err := links.GetAllUserTreasures()
		if err != nil {
			return jsonFetchError(c, "users-treasures", err)
		}
		return c.JSON(all)
	})
	router.Get("/users-treasures/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return jsonNotFound(c, "Link")
		}
		link, err := links.GetUserTreasureByID(uint(id))
		if err != nil {
			return jsonFetchError(c, "users-treasures", err)
		}
		if link == nil {
			return jsonNotFound(c, "Link")
		}
		return c.JSON(link)
	})
	router.Post("/users-treasures", func(c *fiber.Ctx) error {
		var link models.UserTreasure
		if err := c.BodyParser(&link); err != nil {
			return jsonFetchError(c, "users-treasures", err)
		}
		if err := links.CreateUserTreasure(&link); err != nil {
			return jsonFetchError(c, "users-treasures", err)
		}
		return c.Status(fiber.StatusCreated).JSON(link)
	})
	router.Put("/users-treasures/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return jsonNotFound(c, "Link")
		}
		var link models.UserTreasure
		if err := c.BodyParser(&link); err != nil {
			return jsonFetchError(c, "users-treasures", err)
		}
		ok, err := links.UpdateUserTreasure(uint(id), link)
		if err != nil {
			return jsonFetchError(c, "users-treasures", err)
		}
		if !ok {
			return jsonNotFound(c, "Link")
		}
		return c.JSON(fiber.Map{"message": "Link updated successfully"})
	})
	router.Delete("/users-treasures/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return jsonNotFound(c, "Link")
		}
		ok, err := links.DeleteUserTreasure(uint(id))
		if err != nil {
			return jsonFetchError(c, "users-treasures", err)
		}
		if !ok {
			return jsonNotFound(c, "Link")
		}
		return c.JSON(fiber.Map{"message": "Link deleted successfully"})
	})

	// users-achievements
	router.Get("/users-achievements", func(c *fiber.Ctx) error {
		all, err := links.GetAllUserAchievements()
		if err != nil {
			return jsonFetchError(c, "users-achievements", err)
		}
		return c.JSON(all)
	})
	router.Get("/users-achievements/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return jsonNotFound(c, "Link")
		}
		link, err := links.GetUserAchievementByID(uint(id))
		if err != nil {
			return jsonFetchError(c, "users-achievements", err)
		}
		if link == nil {
			return jsonNotFound(c, "Link")
		}
		return c.JSON(link)
	})
	router.Post("/users-achievements", func(c *fiber.Ctx) error {
		var link models.UserAchievement
		if err := c.BodyParser(&link); err != nil {
			return jsonFetchError(c, "users-achievements", err)
		}
		if err := links.CreateUserAchievement(&link); err != nil {
			return jsonFetchError(c, "users-achievements", err)
		}
		return c.Status(fiber.StatusCreated).JSON(link)
	})
	router.Put("/users-achievements/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return jsonNotFound(c, "Link")
		}
		var link models.UserAchievement
		if err := c.BodyParser(&link); err != nil {
			return jsonFetchError(c, "users-achievements", err)
		}
		ok, err := links.UpdateUserAchievement(uint(id), link)
		if err != nil {
			return jsonFetchError(c, "users-achievements", err)
		}
		if !ok {
			return jsonNotFound(c, "Link")
		}
		return c.JSON(fiber.Map{"message": "Link updated successfully"})
	})
	router.Delete("/users-achievements/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return jsonNotFound(c, "Link")
		}
		ok, err := links.DeleteUserAchievement(uint(id))
		if err != nil {
			return jsonFetchError(c, "users-achievements", err)
		}
		if !ok {
			return jsonNotFound(c, "Link")
		}
		return c.JSON(fiber.Map{"message": "Link deleted successfully"})
	})

	// games-clues
	router.Get("/games-clues", func(c *fiber.Ctx) error {
		all, err := links.GetAllGameClues()
		if err != nil {
			return jsonFetchError(c, "games-clues", err)
		}
		return c.JSON(all)
	})
	router.Get("/games-clues/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return jsonNotFound(c, "Link")
		}
		link, err := links.GetGameClueByID(uint(id))
		if err != nil {
			return jsonFetchError(c, "games-clues", err)
		}
		if link == nil {
			return jsonNotFound(c, "Link")
		}
		return c.JSON(link)
	})
	router.Post("/games-clues", func(c *fiber.Ctx) error {
		var link models.GameClue
		if err := c.BodyParser(&link); err != nil {
			return jsonFetchError(c, "games-clues", err)
		}
		if err := links.CreateGameClue(&link); err != nil {
			return jsonFetchError(c, "games-clues", err)
		}
		return c.Status(fiber.StatusCreated).JSON(link)
	})
	router.Put("/games-clues/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return jsonNotFound(c, "Link")
		}
		var link models.GameClue
		if err := c.BodyParser(&link); err != nil {
			return jsonFetchError(c, "games-clues", err)
		}
		ok, err := links.UpdateGameClue(uint(id), link)
		if err != nil {
			return jsonFetchError(c, "games-clues", err)
		}
		if !ok {
			return jsonNotFound(c, "Link")
		}
		return c.JSON(fiber.Map{"message": "Link updated successfully"})
	})
	router.Delete("/games-clues/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return jsonNotFound(c, "Link")
		}
		ok, err := links.DeleteGameClue(uint(id))
		if err != nil {
			return jsonFetchError(c, "games-clues", err)
		}
		if !ok {
			return jsonNotFound(c, "Link")
		}
		return c.JSON(fiber.Map{"message": "Link deleted successfully"})
	})
}

func jsonNotFound(c *fiber.Ctx, entity string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": entity + " not found"})
}

func jsonFetchError(c *fiber.Ctx, group string, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "operation on " + group + " failed",
		"cause": err.Error(),
	})
}
