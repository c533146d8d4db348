package handlers

import (
	"errors"
	"log"

	"github.com/aurelienmx/skillmarket/database"
	"github.com/aurelienmx/skillmarket/models"
	"github.com/aurelienmx/skillmarket/notifications"
	"github.com/aurelienmx/skillmarket/services"
	"github.com/aurelienmx/skillmarket/websocket"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateBookingRequest struct {
	AvailabilitySlotID uint `json:"availability_slot_id" validate:"required"`
}

// CreateBooking opens a pending booking on a free slot. The slot is not
// marked booked here; only the provider's acceptance does that.
func CreateBooking(c *fiber.Ctx) error {
	clientID, _ := currentUser(c)

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var booking models.Booking
	var slot models.AvailabilitySlot
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&slot, "id = ?", req.AvailabilitySlotID).Error; err != nil {
			return errors.New("availability slot not found")
		}
		if slot.IsBooked {
			return errors.New("this slot is no longer available")
		}

		// At most one live (non-declined) booking per slot.
		var live int64
		if err := tx.Model(&models.Booking{}).
			Where("availability_slot_id = ? AND status <> ?", slot.ID, models.BookingStatusDeclined).
			Count(&live).Error; err != nil {
			return err
		}
		if live > 0 {
			return errors.New("this slot already has a pending booking")
		}

		booking = models.Booking{
			ClientID:           clientID,
			AvailabilitySlotID: slot.ID,
			Status:             models.BookingStatusPending,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	websocket.Notify("provider", slot.ProviderID, websocket.Event{
		Type:      "booking_created",
		BookingID: booking.ID,
		Message:   "Nouvelle demande de réservation",
	})

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// AcceptBooking flips a pending booking to accepted; the booking update
// hook marks the slot booked in the same transaction.
func AcceptBooking(c *fiber.Ctx) error {
	providerID, _ := currentUser(c)

	var booking models.Booking
	err := database.DB.Preload("AvailabilitySlot.Provider").Preload("Client").
		First(&booking, "id = ?", c.Params("bookingId")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if booking.AvailabilitySlot.ProviderID != providerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This booking is not yours to accept"})
	}
	if booking.Status != models.BookingStatusPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Booking is not pending"})
	}

	booking.Status = models.BookingStatusAccepted
	if err := database.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to accept booking"})
	}

	go func() {
		if url, err := services.GenerateBookingConfirmation(booking); err != nil {
			log.Printf("🔥 Failed to generate booking confirmation: %v", err)
		} else {
			database.DB.Model(&models.Booking{}).Where("id = ?", booking.ID).Update("confirmation_url", url)
		}
	}()

	go notifications.SendEmail(booking.Client.FirstName, booking.Client.Email,
		"Réservation acceptée", "<h1>Réservation acceptée</h1><p>Votre demande de réservation a été acceptée.</p>")
	websocket.Notify("client", booking.ClientID, websocket.Event{
		Type:      "booking_accepted",
		BookingID: booking.ID,
		Message:   "Votre réservation a été acceptée",
	})

	return c.JSON(booking)
}

// DeclineBooking flips a pending booking to declined; the hook frees the
// slot (a no-op when it was never booked).
func DeclineBooking(c *fiber.Ctx) error {
	providerID, _ := currentUser(c)

	var booking models.Booking
	err := database.DB.Preload("AvailabilitySlot").Preload("Client").
		First(&booking, "id = ?", c.Params("bookingId")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if booking.AvailabilitySlot.ProviderID != providerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This booking is not yours to decline"})
	}
	if booking.Status == models.BookingStatusDeclined {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Booking is already declined"})
	}

	booking.Status = models.BookingStatusDeclined
	if err := database.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to decline booking"})
	}

	go notifications.SendEmail(booking.Client.FirstName, booking.Client.Email,
		"Réservation refusée", "<h1>Réservation refusée</h1><p>Votre demande de réservation a été refusée.</p>")
	websocket.Notify("client", booking.ClientID, websocket.Event{
		Type:      "booking_declined",
		BookingID: booking.ID,
		Message:   "Votre réservation a été refusée",
	})

	return c.JSON(booking)
}

// CancelBooking deletes the booking; the delete hook frees the slot
// whatever the booking's status was.
func CancelBooking(c *fiber.Ctx) error {
	clientID, _ := currentUser(c)

	var booking models.Booking
	err := database.DB.Preload("AvailabilitySlot").
		First(&booking, "id = ?", c.Params("bookingId")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if booking.ClientID != clientID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This booking is not yours to cancel"})
	}

	if err := database.DB.Delete(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel booking"})
	}

	websocket.Notify("provider", booking.AvailabilitySlot.ProviderID, websocket.Event{
		Type:      "booking_cancelled",
		BookingID: booking.ID,
		Message:   "Une réservation a été annulée",
	})

	return c.JSON(fiber.Map{"message": "Booking cancelled"})
}

func GetMyBookings(c *fiber.Ctx) error {
	clientID, _ := currentUser(c)

	var bookings []models.Booking
	err := database.DB.Preload("AvailabilitySlot").Preload("AvailabilitySlot.Provider").
		Where("client_id = ?", clientID).
		Order("created_at desc").
		Find(&bookings).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}
	return c.JSON(bookings)
}

func GetProviderBookings(c *fiber.Ctx) error {
	providerID, _ := currentUser(c)

	var bookings []models.Booking
	err := database.DB.Preload("AvailabilitySlot").Preload("Client").
		Joins("JOIN availability_slots ON bookings.availability_slot_id = availability_slots.id").
		Where("availability_slots.provider_id = ?", providerID).
		Order("bookings.created_at desc").
		Find(&bookings).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}
	return c.JSON(bookings)
}
