package lifecycle_test

import (
	"math/rand"
	"testing"

	"github.com/aurelienmx/skillmarket/lifecycle"
	"github.com/aurelienmx/skillmarket/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedBooking(t *testing.T, db *gorm.DB) (models.Booking, models.AvailabilitySlot) {
	t.Helper()

	provider := models.Provider{FirstName: "Marie", LastName: "Dubois", Email: "marie@example.com", Password: "x"}
	require.NoError(t, db.Create(&provider).Error)
	client := models.Client{FirstName: "Jean", LastName: "Dupont", Email: "jean@example.com", Password: "x"}
	require.NoError(t, db.Create(&client).Error)

	slot := models.AvailabilitySlot{ProviderID: provider.ID, StartTime: "2026-09-01T10:00", EndTime: "2026-09-01T11:00"}
	require.NoError(t, db.Create(&slot).Error)

	booking := models.Booking{ClientID: client.ID, AvailabilitySlotID: slot.ID, Status: models.BookingStatusPending}
	require.NoError(t, db.Create(&booking).Error)
	return booking, slot
}

func slotBooked(t *testing.T, db *gorm.DB, slotID uint) bool {
	t.Helper()
	var slot models.AvailabilitySlot
	require.NoError(t, db.First(&slot, slotID).Error)
	return slot.IsBooked
}

func TestBookingCreate_DoesNotBookSlot(t *testing.T) {
	lifecycle.SetRandomSource(rand.NewSource(20))
	db := newTestDB(t)

	_, slot := seedBooking(t, db)
	assert.False(t, slotBooked(t, db, slot.ID), "a pending booking must not reserve the slot")
}

func TestBookingAccept_BooksSlot(t *testing.T) {
	lifecycle.SetRandomSource(rand.NewSource(21))
	db := newTestDB(t)

	booking, slot := seedBooking(t, db)
	booking.Status = models.BookingStatusAccepted
	require.NoError(t, db.Save(&booking).Error)

	assert.True(t, slotBooked(t, db, slot.ID))
}

func TestBookingDecline_FreesSlot(t *testing.T) {
	lifecycle.SetRandomSource(rand.NewSource(22))
	db := newTestDB(t)

	booking, slot := seedBooking(t, db)
	booking.Status = models.BookingStatusAccepted
	require.NoError(t, db.Save(&booking).Error)
	require.True(t, slotBooked(t, db, slot.ID))

	booking.Status = models.BookingStatusDeclined
	require.NoError(t, db.Save(&booking).Error)

	assert.False(t, slotBooked(t, db, slot.ID))
}

func TestBookingDelete_AlwaysFreesSlot(t *testing.T) {
	lifecycle.SetRandomSource(rand.NewSource(23))
	db := newTestDB(t)

	booking, slot := seedBooking(t, db)
	booking.Status = models.BookingStatusAccepted
	require.NoError(t, db.Save(&booking).Error)
	require.True(t, slotBooked(t, db, slot.ID))

	require.NoError(t, db.Delete(&booking).Error)

	assert.False(t, slotBooked(t, db, slot.ID))
}

func TestBookingDelete_PendingBookingFreesIdleSlot(t *testing.T) {
	lifecycle.SetRandomSource(rand.NewSource(24))
	db := newTestDB(t)

	booking, slot := seedBooking(t, db)
	require.NoError(t, db.Delete(&booking).Error)

	assert.False(t, slotBooked(t, db, slot.ID), "freeing a free slot stays a no-op")
}

func TestBookingRevertToPending_LeavesSlotBooked(t *testing.T) {
	lifecycle.SetRandomSource(rand.NewSource(25))
	db := newTestDB(t)

	booking, slot := seedBooking(t, db)
	booking.Status = models.BookingStatusAccepted
	require.NoError(t, db.Save(&booking).Error)
	require.True(t, slotBooked(t, db, slot.ID))

	// Only accepted and declined touch the flag; a write back to pending
	// leaves the slot as it was. The handlers never expose this transition.
	booking.Status = models.BookingStatusPending
	require.NoError(t, db.Save(&booking).Error)

	assert.True(t, slotBooked(t, db, slot.ID))
}

func TestBookingColumnUpdate_SkipsSlotSync(t *testing.T) {
	lifecycle.SetRandomSource(rand.NewSource(26))
	db := newTestDB(t)

	booking, slot := seedBooking(t, db)
	booking.Status = models.BookingStatusAccepted
	require.NoError(t, db.Save(&booking).Error)
	require.True(t, slotBooked(t, db, slot.ID))

	url := "https://cdn.example.com/confirmations/booking-1.pdf"
	err := db.Model(&models.Booking{}).Where("id = ?", booking.ID).Update("confirmation_url", url).Error
	require.NoError(t, err)

	assert.True(t, slotBooked(t, db, slot.ID), "an unrelated column write must not free the slot")
}
