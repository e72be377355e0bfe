package models

import "time"

type Appointment struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	CreatedBy           uint      `gorm:"index;not null" json:"created_by"`
	VenueID             uint      `gorm:"index;not null" json:"venue_id"`
	Venue               Venue     `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
	AppointmentDatetime time.Time `gorm:"not null" json:"appointment_datetime"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	Attendants []User `gorm:"many2many:appointment_guests" json:"attendants,omitempty"`
}
