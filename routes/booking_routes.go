package routes

import (
	"github.com/aurelienmx/skillmarket/handlers"
	"github.com/aurelienmx/skillmarket/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected(), middleware.ClientRequired())
	booking.Get("/me", handlers.GetMyBookings)
	booking.Post("", handlers.CreateBooking)
	booking.Delete("/:bookingId", handlers.CancelBooking)
	booking.Post("/:bookingId/review", handlers.CreateReview)

	providerBooking := api.Group("/provider/bookings", middleware.Protected(), middleware.ProviderRequired())
	providerBooking.Get("", handlers.GetProviderBookings)
	providerBooking.Post("/:bookingId/accept", handlers.AcceptBooking)
	providerBooking.Post("/:bookingId/decline", handlers.DeclineBooking)
}
