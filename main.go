package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"findly/handlers"
	"findly/middleware"
	"findly/models"
	"findly/services"
	"findly/utils"
	"findly/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			log.Printf("Unhandled error on %s: %v", c.Path(), err)
			if code == fiber.StatusNotFound {
				return c.Status(code).Render("404", fiber.Map{})
			}
			return c.Status(fiber.StatusInternalServerError).Render("internalServerError", fiber.Map{})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	if err := utils.InitStorage(); err != nil {
		log.Fatal("failed to initialize storage client:", err)
	}
	if err := utils.EnsureUploadDir(); err != nil {
		log.Fatal("failed to ensure upload dir:", err)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.Achievement{},
		&models.Treasure{},
		&models.Clue{},
		&models.GameUser{},
		&models.UserTreasure{},
		&models.UserAchievement{},
		&models.GameClue{},
		&models.LeaderboardStanding{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	userService := services.NewUserService(db)
	gameService := services.NewGameService(db)
	achievementService := services.NewAchievementService(db)
	treasureService := services.NewTreasureService(db)
	clueService := services.NewClueService(db)
	linkService := services.NewLinkService(db)
	leaderboardService := services.NewLeaderboardService(db)

	sessionStore := middleware.NewSessionStore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	refresher := workers.NewStandingsRefresher(leaderboardService)
	go workers.PollStandings(ctx, refresher, 30*time.Second)

	achievementService.StartUnlockScheduler()

	findly := app.Group("/Findly", middleware.UserLoader(sessionStore))
	handlers.SetupPageRoutes(findly)
	handlers.SetupUserRoutes(findly, sessionStore, userService, achievementService)
	handlers.SetupGameRoutes(findly, gameService, clueService)
	handlers.SetupAchievementRoutes(findly, achievementService)
	handlers.SetupTreasureRoutes(findly, treasureService, clueService)
	handlers.SetupLinkRoutes(findly, linkService)
	handlers.SetupLeaderboardRoutes(findly, leaderboardService)

	app.Static("/uploads", "./uploads")
	app.Static("/css", "./css")

	app.Use(handlers.NotFoundHandler)

	port := os.Getenv("PORT")
	if port == "" {
		log.Println("⚠️  PORT environment variable not set, using default: 3000")
		port = "3000"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s/Findly", port)
	log.Println("✅ Leaderboard standings polling running (every 30s)")
	log.Println("✅ Achievement unlock sweep running (every 1m)")

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
