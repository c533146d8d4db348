package routes

import (
	"github.com/aurelienmx/skillmarket/handlers"
	"github.com/aurelienmx/skillmarket/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProviderRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/providers", handlers.ListProviders)
	api.Get("/providers/:slug", handlers.GetProviderBySlug)
	api.Get("/providers/:slug/slots", handlers.ListProviderSlots)
	api.Get("/providers/:slug/reviews", handlers.ListProviderReviews)

	me := api.Group("/provider", middleware.Protected(), middleware.ProviderRequired())
	me.Get("/me", handlers.GetMyProviderProfile)
	me.Put("/me", handlers.UpdateMyProviderProfile)
	me.Delete("/me", handlers.DeleteMyProviderAccount)
	me.Post("/slots", handlers.CreateAvailabilitySlot)
	me.Delete("/slots/:id", handlers.DeleteAvailabilitySlot)
}
