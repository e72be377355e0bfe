package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/energeist/dockerized-climbunity/middlewares"
	"github.com/energeist/dockerized-climbunity/services"
)

func ListUsers(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewUserService(db)
	return func(c *gin.Context) {
		users, err := svc.ListUsers()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

func GetUser(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewUserService(db)
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		user, err := svc.GetUser(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// UpdateProfile edits the current user's own profile. The id in the path
// must match the authenticated user.
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewUserService(db)
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		if c.GetUint(middlewares.ContextUserID) != id {
			c.JSON(http.StatusForbidden, gin.H{"error": "you can only edit your own profile"})
			return
		}
		var input services.ProfileUpdateRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		user, err := svc.UpdateProfile(id, input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
