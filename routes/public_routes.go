package routes

import (
	"github.com/aurelienmx/skillmarket/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/countries", handlers.ListCountries)
	api.Get("/languages", handlers.ListLanguages)
	api.Get("/jobs", handlers.ListJobs)
	api.Get("/hard-skills", handlers.ListHardSkills)
	api.Get("/soft-skills", handlers.ListSoftSkills)
	api.Get("/tags", handlers.ListTags)
}
