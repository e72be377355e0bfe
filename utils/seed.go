package utils

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/energeist/dockerized-climbunity/models"
)

// SeedTaxonomy creates the static Style and Tag reference rows. Styles and
// tags have no CRUD routes; this is the only place they are written.
// Check-then-create, so running it on every startup is harmless.
func SeedTaxonomy(db *gorm.DB) {
	styles := []string{"boulder", "toprope", "lead", "trad", "speed", "alpine"}
	for _, label := range styles {
		var existing models.Style
		if err := db.Where("style = ?", label).First(&existing).Error; err != nil {
			if err := db.Create(&models.Style{Style: label}).Error; err != nil {
				logrus.WithError(err).WithField("style", label).Warn("failed to seed style")
			}
		}
	}

	tags := []string{"crimpy", "slopey", "dyno", "overhang", "slab", "jugs"}
	for _, label := range tags {
		var existing models.Tag
		if err := db.Where("tag = ?", label).First(&existing).Error; err != nil {
			if err := db.Create(&models.Tag{Tag: label}).Error; err != nil {
				logrus.WithError(err).WithField("tag", label).Warn("failed to seed tag")
			}
		}
	}
}
