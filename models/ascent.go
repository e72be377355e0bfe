package models

import "time"

type SendType string

const (
	SendOnsight  SendType = "ONSIGHT"
	SendRedpoint SendType = "REDPOINT"
	SendSend     SendType = "SEND"
	SendAbandon  SendType = "ABANDON"
	SendFlash    SendType = "FLASH"
)

// Label returns the user-facing description for a send type.
func (s SendType) Label() string {
	switch s {
	case SendOnsight:
		return "Onsight send"
	case SendRedpoint:
		return "Redpoint send"
	case SendSend:
		return "Fell/hung and finished route"
	case SendAbandon:
		return "Abandoned ascent"
	case SendFlash:
		return "Flash"
	}
	return string(s)
}

func (s SendType) Valid() bool {
	switch s {
	case SendOnsight, SendRedpoint, SendSend, SendAbandon, SendFlash:
		return true
	}
	return false
}

type Ascent struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"index;not null" json:"user_id"`
	User         User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	RouteID      uint       `gorm:"index;not null" json:"route_id"`
	SendDate     *time.Time `gorm:"type:date" json:"send_date,omitempty"`
	SendType     SendType   `gorm:"size:20" json:"send_type"`
	SendRating   int        `json:"send_rating"`
	SendComments string     `gorm:"size:1000" json:"send_comments"`
	CreatedAt    time.Time  `json:"created_at"`
}
