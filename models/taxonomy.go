package models

// Style is a climbing discipline. Enums do not compose with many-to-many
// associations, so the taxonomy lives in a reference table shared by two
// independent sets: user preference and route applicability.
type Style struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Style string `gorm:"size:8;uniqueIndex;not null" json:"style"`

	Climbers []User  `gorm:"many2many:user_style_lists" json:"-"`
	Routes   []Route `gorm:"many2many:route_style_lists" json:"-"`
}

// Tag is a free-form route feature label, seeded at startup and applied to
// routes for searching.
type Tag struct {
	ID  uint   `gorm:"primaryKey" json:"id"`
	Tag string `gorm:"uniqueIndex;not null" json:"tag"`

	Routes []Route `gorm:"many2many:route_tag_lists" json:"-"`
}
