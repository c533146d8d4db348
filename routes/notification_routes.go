package routes

import (
	"github.com/aurelienmx/skillmarket/handlers"
	"github.com/aurelienmx/skillmarket/middleware"
	"github.com/gofiber/fiber/v2"
)

func NotificationRoutes(app *fiber.App) {
	app.Use("/ws/notifications", middleware.Protected(), handlers.WebsocketUpgrade)
	app.Get("/ws/notifications", handlers.NotificationSocket)
}
