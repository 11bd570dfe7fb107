// handlers/pages.go
package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// SetupPageRoutes serves the static site pages the app renders around the
// game flow: landing, about, contact, the signup/login forms, and legal.
func SetupPageRoutes(router fiber.Router) {
	router.Get("/", func(c *fiber.Ctx) error {
		return c.Render("welcome", fiber.Map{"user": c.Locals("user")})
	})
	router.Get("/aboutus", func(c *fiber.Ctx) error {
		return c.Render("aboutus", fiber.Map{"user": c.Locals("user")})
	})
	router.Get("/contactus", func(c *fiber.Ctx) error {
		return c.Render("contactus", fiber.Map{"user": c.Locals("user")})
	})
	router.Get("/signup", func(c *fiber.Ctx) error {
		return c.Render("signup", fiber.Map{})
	})
	router.Get("/login", func(c *fiber.Ctx) error {
		return c.Render("login", fiber.Map{})
	})
	router.Get("/privacy", func(c *fiber.Ctx) error {
		return c.Render("privacy", fiber.Map{})
	})
	router.Get("/terms", func(c *fiber.Ctx) error {
		return c.Render("terms", fiber.Map{})
	})
}

// NotFoundHandler renders the 404 page for any route nothing else matched.
func NotFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("404", fiber.Map{})
}

func renderServerError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).Render("internalServerError", fiber.Map{})
}
