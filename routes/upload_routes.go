package routes

import (
	"github.com/aurelienmx/skillmarket/handlers"
	"github.com/aurelienmx/skillmarket/middleware"
	"github.com/gofiber/fiber/v2"
)

func UploadRoutes(app *fiber.App) {
	api := app.Group("/api/v1/uploads", middleware.Protected())
	api.Post("/profile-picture", handlers.UploadProfilePicture)
	api.Get("/signature", handlers.GenerateUploadSignature)

	owned := api.Group("", middleware.ProviderRequired())
	owned.Post("/services/:id/cover", handlers.UploadServiceCover)
	owned.Post("/articles/:id/images", handlers.UploadArticleImage)
}
