package main

import (
	"log"
	"time"

	config "github.com/aurelienmx/skillmarket/configs"
	"github.com/aurelienmx/skillmarket/database"
	"github.com/aurelienmx/skillmarket/jobs"
	"github.com/aurelienmx/skillmarket/notifications"
	"github.com/aurelienmx/skillmarket/routes"
	"github.com/aurelienmx/skillmarket/uploads"
	"github.com/aurelienmx/skillmarket/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	database.SeedFixtures()
	notifications.InitEmailService()

	if root := config.Config("UPLOAD_ROOT"); root != "" {
		uploads.Default.Root = root
	}

	c := cron.New()
	c.AddFunc("0 * * * *", jobs.ExpireStalePendingBookings)
	c.AddFunc("30 3 * * *", jobs.ReclaimOrphanedUploads)
	go c.Start()
	log.Println("✅ Cron jobs scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "Skillmarket",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to the Skillmarket API",
		})
	})

	routes.PublicRoutes(app)
	routes.AuthRoutes(app)
	routes.ProviderRoutes(app)
	routes.ClientRoutes(app)
	routes.CatalogRoutes(app)
	routes.BookingRoutes(app)
	routes.UploadRoutes(app)
	routes.NotificationRoutes(app)

	go websocket.RunHub()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Println("✅ Server is running on port 8080")
	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
