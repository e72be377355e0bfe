package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"size:200;not null" json:"-"` // bcrypt hash
	Email     string    `gorm:"size:200;uniqueIndex;not null" json:"email"`
	FirstName string    `gorm:"size:50;not null" json:"first_name"`
	LastName  string    `gorm:"size:50" json:"last_name"`
	Address   string    `gorm:"size:200;not null" json:"address"`
	HasGear   bool      `gorm:"default:false" json:"has_gear"`
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Ascents      []Ascent      `gorm:"foreignKey:UserID" json:"ascents,omitempty"`
	Projects     []Route       `gorm:"many2many:user_project_lists" json:"projects,omitempty"`
	Appointments []Appointment `gorm:"many2many:appointment_guests" json:"appointments,omitempty"`
	Styles       []Style       `gorm:"many2many:user_style_lists" json:"styles,omitempty"`
}
