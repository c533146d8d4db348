package routes

import (
	"github.com/aurelienmx/skillmarket/handlers"
	"github.com/aurelienmx/skillmarket/middleware"
	"github.com/gofiber/fiber/v2"
)

func ClientRoutes(app *fiber.App) {
	me := app.Group("/api/v1/client", middleware.Protected(), middleware.ClientRequired())
	me.Get("/me", handlers.GetMyClientProfile)
	me.Put("/me", handlers.UpdateMyClientProfile)
	me.Delete("/me", handlers.DeleteMyClientAccount)
}
