package handlers

import (
	"github.com/aurelienmx/skillmarket/database"
	"github.com/aurelienmx/skillmarket/models"
	"github.com/gofiber/fiber/v2"
)

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// CreateReview lets the booking's client review the provider once the
// booking was accepted. One review per booking.
func CreateReview(c *fiber.Ctx) error {
	clientID, _ := currentUser(c)

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var booking models.Booking
	err := database.DB.Preload("AvailabilitySlot").
		First(&booking, "id = ?", c.Params("bookingId")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if booking.ClientID != clientID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only review your own bookings"})
	}
	if booking.Status != models.BookingStatusAccepted {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only accepted bookings can be reviewed"})
	}

	var existing int64
	database.DB.Model(&models.Review{}).Where("booking_id = ?", booking.ID).Count(&existing)
	if existing > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "This booking already has a review"})
	}

	review := models.Review{
		BookingID:  booking.ID,
		ClientID:   clientID,
		ProviderID: booking.AvailabilitySlot.ProviderID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := database.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create review"})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

func ListProviderReviews(c *fiber.Ctx) error {
	var provider models.Provider
	if err := database.DB.Where("slug = ?", c.Params("slug")).First(&provider).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider not found"})
	}

	var reviews []models.Review
	err := database.DB.Preload("Client").
		Where("provider_id = ?", provider.ID).
		Order("created_at desc").
		Find(&reviews).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch reviews"})
	}
	return c.JSON(reviews)
}
