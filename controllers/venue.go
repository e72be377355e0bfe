package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/energeist/dockerized-climbunity/services"
)

func ListVenues(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewVenueService(db)
	return func(c *gin.Context) {
		venues, err := svc.ListVenues()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, venues)
	}
}

func GetVenue(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewVenueService(db)
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		venue, err := svc.GetVenue(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, venue)
	}
}

func CreateVenue(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewVenueService(db)
	return func(c *gin.Context) {
		var input services.VenueRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		venue, err := svc.CreateVenue(input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, venue)
	}
}

func UpdateVenue(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewVenueService(db)
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		var input services.VenueRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		venue, err := svc.UpdateVenue(id, input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, venue)
	}
}

func DeleteVenue(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewVenueService(db)
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		if err := svc.DeleteVenue(id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "venue deleted"})
	}
}
