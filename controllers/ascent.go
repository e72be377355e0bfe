package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/energeist/dockerized-climbunity/middlewares"
	"github.com/energeist/dockerized-climbunity/services"
)

// LogAscent records an attempt or send on a route by the current user.
func LogAscent(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewAscentService(db)
	return func(c *gin.Context) {
		routeID, ok := paramID(c, "id")
		if !ok {
			return
		}
		var input services.AscentRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		userID := c.GetUint(middlewares.ContextUserID)
		ascent, err := svc.LogAscent(routeID, userID, input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, ascent)
	}
}

func DeleteAscent(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewAscentService(db)
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		if err := svc.DeleteAscent(id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "ascent deleted"})
	}
}

func GetUserAscents(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewAscentService(db)
	return func(c *gin.Context) {
		userID, ok := paramID(c, "id")
		if !ok {
			return
		}
		ascents, err := svc.ListUserAscents(userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, ascents)
	}
}
