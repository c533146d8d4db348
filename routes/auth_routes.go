package routes

import (
	"github.com/aurelienmx/skillmarket/handlers"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	auth := app.Group("/api/v1/auth")
	auth.Post("/register/provider", handlers.RegisterProvider)
	auth.Post("/register/client", handlers.RegisterClient)
	auth.Post("/login", handlers.Login)
}
