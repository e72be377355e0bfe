package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/energeist/dockerized-climbunity/middlewares"
	"github.com/energeist/dockerized-climbunity/services"
)

// HTML page handlers. Presentation stays thin: each handler loads the
// entities the template shows and whether the viewer is logged in, nothing
// else. Management affordances (edit/delete forms) only render for
// authenticated viewers.

func HomePage(db *gorm.DB) gin.HandlerFunc {
	venues := services.NewVenueService(db)
	routes := services.NewRouteService(db)
	return func(c *gin.Context) {
		allVenues, err := venues.ListVenues()
		if err != nil {
			c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Error": "could not load venues"})
			return
		}
		allRoutes, err := routes.ListRoutes()
		if err != nil {
			c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Error": "could not load routes"})
			return
		}
		c.HTML(http.StatusOK, "home.html", gin.H{
			"Venues":   allVenues,
			"Routes":   allRoutes,
			"LoggedIn": middlewares.IsAuthenticated(c),
		})
	}
}

func VenueDetailPage(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewVenueService(db)
	appointments := services.NewAppointmentService(db)
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
		booked, err := appointments.ListVenueAppointments(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.HTML(http.StatusOK, "venue_detail.html", gin.H{
			"Venue":        venue,
			"Routes":       venue.Routes,
			"Appointments": booked,
			"LoggedIn":     middlewares.IsAuthenticated(c),
		})
	}
}

func RouteDetailPage(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewRouteService(db)
	ascents := services.NewAscentService(db)
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
		rating, err := ascents.RouteAverageRating(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.HTML(http.StatusOK, "route_detail.html", gin.H{
			"Route":    route,
			"Venue":    route.Venue,
			"Rating":   rating,
			"LoggedIn": middlewares.IsAuthenticated(c),
		})
	}
}

func UserDetailPage(db *gorm.DB) gin.HandlerFunc {
	users := services.NewUserService(db)
	ascents := services.NewAscentService(db)
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		user, err := users.GetUser(id)
		if err != nil {
			respondError(c, err)
			return
		}
		logged, err := ascents.ListUserAscents(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.HTML(http.StatusOK, "user_detail.html", gin.H{
			"User":      user,
			"Ascents":   logged,
			"LoggedIn":  middlewares.IsAuthenticated(c),
			"OwnerView": c.GetUint(middlewares.ContextUserID) == id,
		})
	}
}
