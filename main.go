package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/energeist/dockerized-climbunity/config"
	"github.com/energeist/dockerized-climbunity/models"
	"github.com/energeist/dockerized-climbunity/routes"
	"github.com/energeist/dockerized-climbunity/utils"
)

func main() {
	cfg := config.Load()

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}

	if err := migrate(db); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}

	utils.SeedTaxonomy(db)

	r := routes.SetupRouter(db)
	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.WithField("addr", addr).Info("server running")
	if err := r.Run(addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{}, &models.Venue{}, &models.Route{}, &models.Ascent{},
		&models.Appointment{}, &models.Style{}, &models.Tag{}, &models.RefreshToken{},
	)
}
