package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/energeist/dockerized-climbunity/middlewares"
	"github.com/energeist/dockerized-climbunity/services"
)

func ListRoutes(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewRouteService(db)
	return func(c *gin.Context) {
		routes, err := svc.ListRoutes()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, routes)
	}
}

func GetRoute(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewRouteService(db)
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		route, err := svc.GetRoute(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, route)
	}
}

func CreateRoute(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewRouteService(db)
	return func(c *gin.Context) {
		var input services.RouteRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.SetterID == nil {
			userID := c.GetUint(middlewares.ContextUserID)
			input.SetterID = &userID
		}
		route, err := svc.CreateRoute(input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, route)
	}
}

func UpdateRoute(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewRouteService(db)
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		var input services.RouteRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		route, err := svc.UpdateRoute(id, input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, route)
	}
}

func DeleteRoute(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewRouteService(db)
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		if err := svc.DeleteRoute(id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "route deleted"})
	}
}

// AddProject puts a route on the current user's project list.
func AddProject(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewRouteService(db)
	return func(c *gin.Context) {
		routeID, ok := paramID(c, "id")
		if !ok {
			return
		}
		userID := c.GetUint(middlewares.ContextUserID)
		if err := svc.AddProject(userID, routeID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "route added to project list"})
	}
}

func RemoveProject(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewRouteService(db)
	return func(c *gin.Context) {
		routeID, ok := paramID(c, "id")
		if !ok {
			return
		}
		userID := c.GetUint(middlewares.ContextUserID)
		if err := svc.RemoveProject(userID, routeID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "route removed from project list"})
	}
}

func GetProjects(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewRouteService(db)
	return func(c *gin.Context) {
		userID := c.GetUint(middlewares.ContextUserID)
		projects, err := svc.ListProjects(userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, projects)
	}
}
