// handlers/user.go
package handlers

import (
	"fmt"

	"findly/middleware"
	"findly/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupUserRoutes wires authentication and profile endpoints. These are the
// only handlers allowed to write the session snapshot.
func SetupUserRoutes(router fiber.Router, store *session.Store, users *services.UserService, achievements *services.AchievementService) {

	router.Get("/users", func(c *fiber.Ctx) error {
		all, err := users.GetAll()
		if err != nil {
			return renderServerError(c)
		}
		return c.JSON(all)
	})

	router.Get("/users/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}

		user, err := users.GetByID(uint(id))
		if err != nil {
			return renderServerError(c)
		}
		if user == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}

		unlocked, err := achievements.UnlockedFor(user.Points)
		if err != nil {
			return renderServerError(c)
		}

		return c.Render("userProfile", fiber.Map{
			"user":         user,
			"achievements": unlocked,
		})
	})

	// Signup
	router.Post("/users", func(c *fiber.Ctx) error {
		var in services.UserInput
		if err := c.BodyParser(&in); err != nil {
			return renderServerError(c)
		}

		existing, err := users.FindByName(in.Name)
		if err != nil {
			return renderServerError(c)
		}
		if existing != nil {
			return c.Status(fiber.StatusConflict).Render("signup", fiber.Map{
				"error": "Username already exists",
			})
		}

		created, err := users.Create(in)
		if err != nil {
			return renderServerError(c)
		}
		if created == nil {
			return c.Status(fiber.StatusInternalServerError).Render("signup", fiber.Map{
				"error": "Unable to create user! Please try again later ...",
			})
		}

		return c.Redirect("/Findly/login")
	})

	router.Put("/users/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusNotFound).Render("404", fiber.Map{})
		}

		var in services.UserInput
		if err := c.BodyParser(&in); err != nil {
			return renderServerError(c)
		}

		current, err := users.GetByID(uint(id))
		if err != nil {
			return renderServerError(c)
		}
		if current == nil {
			return c.Status(fiber.StatusNotFound).Render("404", fiber.Map{})
		}

		// Only re-check uniqueness when the name actually changed, so a
		// user never conflicts with themselves.
		if in.Name != current.Name {
			existing, err := users.FindByName(in.Name)
			if err != nil {
				return renderServerError(c)
			}
			if existing != nil {
				return c.Status(fiber.StatusConflict).Render("editUser", fiber.Map{
					"message": "Username already exists",
				})
			}
		}

		ok, err := users.Update(uint(id), in)
		if err != nil {
			return renderServerError(c)
		}
		if !ok {
			return c.Status(fiber.StatusNotModified).Render("editUser", fiber.Map{
				"message": "No changes made",
			})
		}

		// Refresh the session snapshot from the stored row.
		updated, err := users.GetByID(uint(id))
		if err != nil || updated == nil {
			return renderServerError(c)
		}
		sess, err := store.Get(c)
		if err != nil {
			return renderServerError(c)
		}
		if err := middleware.SetSessionUser(sess, updated); err != nil {
			return renderServerError(c)
		}

		return c.Redirect(fmt.Sprintf("/Findly/users/%d", id))
	})

	router.Delete("/users/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}

		ok, err := users.Delete(uint(id))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete user"})
		}
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return c.JSON(fiber.Map{"message": "User deleted successfully"})
	})

	router.Post("/users/login", func(c *fiber.Ctx) error {
		var in services.UserInput
		if err := c.BodyParser(&in); err != nil {
			return renderServerError(c)
		}

		user, err := users.CheckLogin(in.Name, in.Password)
		if err != nil {
			return renderServerError(c)
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
				"error": "Invalid credentials",
			})
		}

		sess, err := store.Get(c)
		if err != nil {
			return renderServerError(c)
		}
		if err := middleware.SetSessionUser(sess, user); err != nil {
			return renderServerError(c)
		}

		return c.Redirect("/Findly/games")
	})
}
