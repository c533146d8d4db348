package models

import "time"

type Review struct {
	ID         uint   `gorm:"primary_key" json:"id"`
	BookingID  uint   `gorm:"not null;unique" json:"booking_id"`
	ClientID   uint   `gorm:"not null" json:"client_id"`
	ProviderID uint   `gorm:"not null" json:"provider_id"`
	Rating     int    `gorm:"not null" json:"rating"`
	Comment    string `gorm:"type:text" json:"comment"`

	Booking  Booking  `gorm:"foreignkey:BookingID" json:"booking,omitempty"`
	Client   Client   `gorm:"foreignkey:ClientID" json:"client,omitempty"`
	Provider Provider `gorm:"foreignkey:ProviderID" json:"provider,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
