package models

import "time"

type Venue struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:80;not null" json:"name"`
	Address     string    `gorm:"size:80;not null" json:"address"`
	OpenHours   string    `gorm:"size:500" json:"open_hours"`
	Description string    `gorm:"size:500" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Routes       []Route       `gorm:"foreignKey:VenueID" json:"routes,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:VenueID" json:"appointments,omitempty"`
}
