package jobs

import (
	"log"
	"time"

	"github.com/aurelienmx/skillmarket/database"
	"github.com/aurelienmx/skillmarket/models"
	"github.com/aurelienmx/skillmarket/notifications"
)

const pendingBookingMaxAge = 7 * 24 * time.Hour

// ExpireStalePendingBookings declines bookings the provider never answered.
// Going through Save keeps the slot synchronization in the update hook.
func ExpireStalePendingBookings() {
	log.Println("Running job: ExpireStalePendingBookings...")

	cutoff := time.Now().Add(-pendingBookingMaxAge)

	var stale []models.Booking
	err := database.DB.Preload("Client").
		Where("status = ? AND created_at < ?", models.BookingStatusPending, cutoff).
		Find(&stale).Error
	if err != nil {
		log.Printf("Error fetching stale pending bookings: %v", err)
		return
	}

	for i := range stale {
		booking := &stale[i]
		booking.Status = models.BookingStatusDeclined
		if err := database.DB.Save(booking).Error; err != nil {
			log.Printf("Error expiring booking %d: %v", booking.ID, err)
			continue
		}
		log.Printf("Expired pending booking %d", booking.ID)

		go notifications.SendEmail(booking.Client.FirstName, booking.Client.Email,
			"Réservation expirée",
			"<h1>Réservation expirée</h1><p>Votre demande de réservation est restée sans réponse et a été annulée.</p>")
	}
}
