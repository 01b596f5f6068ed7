package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	config "github.com/saanviyoga/yoga_studio/configs"
	"github.com/saanviyoga/yoga_studio/monitoring"
	"github.com/saanviyoga/yoga_studio/notifications"
	"github.com/saanviyoga/yoga_studio/routes"
	"github.com/saanviyoga/yoga_studio/storage"
)

func main() {
	monitoring.Init()

	// The durable backend connects lazily; a bad DATABASE_URL downgrades the
	// store to memory on the first request instead of crashing the process.
	store := storage.NewManager(
		storage.NewPostgresBackend(config.Config("DATABASE_URL")),
		storage.NewMemoryBackend(),
	)
	mailer := notifications.NewEmailService()

	app := fiber.New(fiber.Config{
		AppName:       "Saanvi Yoga Studio",
		CaseSensitive: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Errorf("%v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(monitoring.Handler()))

	routes.ApiRoutes(app, store, mailer)

	// Prebuilt SPA assets.
	app.Static("/", "./public")

	port := config.Config("PORT")
	if port == "" {
		port = "5000"
	}

	log.Infof("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
