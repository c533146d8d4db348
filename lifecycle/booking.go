package lifecycle

import "gorm.io/gorm"

// Booking statuses. Accepted and declined are terminal in the flows the
// handlers expose; the column itself does not forbid other writes.
const (
	BookingPending  = "pending"
	BookingAccepted = "accepted"
	BookingDeclined = "declined"
)

// SyncBookingSlot keeps an availability slot's denormalized is_booked flag
// in line with a booking status change, inside the booking's own
// transaction. Accepted books the slot, declined frees it, pending leaves
// it untouched. Creating a booking never books a slot by itself; only the
// transition to accepted does.
func SyncBookingSlot(tx *gorm.DB, slotID uint, status string) error {
	switch status {
	case BookingAccepted:
		return setSlotBooked(tx, slotID, true)
	case BookingDeclined:
		return setSlotBooked(tx, slotID, false)
	}
	return nil
}

// ReleaseBookingSlot frees the slot when its booking is deleted, whatever
// the booking's status was. Freeing an already-free slot is a no-op.
func ReleaseBookingSlot(tx *gorm.DB, slotID uint) error {
	return setSlotBooked(tx, slotID, false)
}

func setSlotBooked(tx *gorm.DB, slotID uint, booked bool) error {
	return tx.Session(&gorm.Session{NewDB: true}).
		Table("availability_slots").
		Where("id = ?", slotID).
		Update("is_booked", booked).Error
}
