package routes

import (
	"github.com/aurelienmx/skillmarket/handlers"
	"github.com/aurelienmx/skillmarket/middleware"
	"github.com/gofiber/fiber/v2"
)

// CatalogRoutes covers the provider-published content: services and articles.
func CatalogRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/services", handlers.ListServices)
	api.Get("/services/:slug", handlers.GetServiceBySlug)
	api.Get("/articles", handlers.ListArticles)
	api.Get("/articles/:slug", handlers.GetArticleBySlug)

	owned := api.Group("/provider", middleware.Protected(), middleware.ProviderRequired())
	owned.Post("/services", handlers.CreateService)
	owned.Put("/services/:id", handlers.UpdateService)
	owned.Delete("/services/:id", handlers.DeleteService)
	owned.Post("/articles", handlers.CreateArticle)
	owned.Put("/articles/:id", handlers.UpdateArticle)
	owned.Delete("/articles/:id", handlers.DeleteArticle)
}
