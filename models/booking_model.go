package models

import (
	"time"

	"github.com/aurelienmx/skillmarket/lifecycle"
	"gorm.io/gorm"
)

const (
	BookingStatusPending  = lifecycle.BookingPending
	BookingStatusAccepted = lifecycle.BookingAccepted
	BookingStatusDeclined = lifecycle.BookingDeclined
)

type Booking struct {
	ID                 uint    `gorm:"primary_key" json:"id"`
	ClientID           uint    `gorm:"not null" json:"client_id"`
	AvailabilitySlotID uint    `gorm:"not null" json:"availability_slot_id"`
	Status             string  `gorm:"size:20;not null;default:'pending'" json:"status"`
	ConfirmationURL    *string `gorm:"size:255" json:"confirmation_url"`

	Client           Client           `gorm:"foreignkey:ClientID" json:"client,omitempty"`
	AvailabilitySlot AvailabilitySlot `gorm:"foreignkey:AvailabilitySlotID" json:"availability_slot,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Creation never books the slot; only the later transition to accepted does.

func (b *Booking) BeforeUpdate(tx *gorm.DB) error {
	return lifecycle.SyncBookingSlot(tx, b.AvailabilitySlotID, b.Status)
}

func (b *Booking) BeforeDelete(tx *gorm.DB) error {
	return lifecycle.ReleaseBookingSlot(tx, b.AvailabilitySlotID)
}
