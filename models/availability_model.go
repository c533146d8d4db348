package models

type AvailabilitySlot struct {
	ID         uint   `gorm:"primary_key" json:"id"`
	ProviderID uint   `gorm:"not null" json:"provider_id"`
	StartTime  string `gorm:"size:50;not null" json:"start_time"`
	EndTime    string `gorm:"size:50;not null" json:"end_time"`
	// IsBooked is denormalized from the slot's bookings for cheap listing
	// queries; only the booking lifecycle writes it.
	IsBooked bool     `gorm:"not null;default:false" json:"is_booked"`
	Provider Provider `gorm:"foreignkey:ProviderID" json:"provider,omitempty"`
}
