package models

import "time"

type Route struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	VenueID           uint       `gorm:"index;not null" json:"venue_id"`
	Venue             Venue      `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
	SetterID          *uint      `gorm:"index" json:"setter_id,omitempty"`
	Name              string     `gorm:"size:80;not null" json:"name"`
	Grade             string     `gorm:"size:10" json:"grade"`
	PhotoURL          string     `gorm:"size:300" json:"photo_url"`
	RouteSetDate      *time.Time `gorm:"type:date" json:"route_set_date,omitempty"`
	RouteTakedownDate *time.Time `gorm:"type:date" json:"route_takedown_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	Ascents         []Ascent `gorm:"foreignKey:RouteID" json:"ascents,omitempty"`
	Styles          []Style  `gorm:"many2many:route_style_lists" json:"styles,omitempty"`
	Tags            []Tag    `gorm:"many2many:route_tag_lists" json:"tags,omitempty"`
	ProjectingUsers []User   `gorm:"many2many:user_project_lists" json:"-"`
}
