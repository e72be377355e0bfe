package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/energeist/dockerized-climbunity/middlewares"
	"github.com/energeist/dockerized-climbunity/services"
)

func CreateAppointment(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewAppointmentService(db)
	return func(c *gin.Context) {
		var input services.AppointmentRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		creatorID := c.GetUint(middlewares.ContextUserID)
		appointment, err := svc.CreateAppointment(creatorID, input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, appointment)
	}
}

func GetAppointment(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewAppointmentService(db)
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		appointment, err := svc.GetAppointment(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, appointment)
	}
}

func JoinAppointment(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewAppointmentService(db)
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		userID := c.GetUint(middlewares.ContextUserID)
		if err := svc.JoinAppointment(userID, id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "joined appointment"})
	}
}

func LeaveAppointment(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewAppointmentService(db)
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		userID := c.GetUint(middlewares.ContextUserID)
		if err := svc.LeaveAppointment(userID, id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "left appointment"})
	}
}

func DeleteAppointment(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewAppointmentService(db)
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		if err := svc.DeleteAppointment(id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "appointment deleted"})
	}
}

func ListVenueAppointments(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewAppointmentService(db)
	return func(c *gin.Context) {
		venueID, ok := paramID(c, "id")
		if !ok {
			return
		}
		appointments, err := svc.ListVenueAppointments(venueID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, appointments)
	}
}

func ListMyAppointments(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewAppointmentService(db)
	return func(c *gin.Context) {
		userID := c.GetUint(middlewares.ContextUserID)
		appointments, err := svc.ListUserAppointments(userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, appointments)
	}
}
