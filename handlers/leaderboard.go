// handlers/leaderboard.go
package handlers

import (
	"strconv"

	"findly/services"

	"github.com/gofiber/fiber/v2"
)

func SetupLeaderboardRoutes(router fiber.Router, leaderboard *services.LeaderboardService) {
	router.Get("/leaderboards", func(c *fiber.Ctx) error {
		limit, _ := strconv.Atoi(c.Query("limit", "50"))
		standings, err := leaderboard.Standings(limit)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch leaderboard", "cause": err.Error()})
		}
		return c.JSON(standings)
	})
}
