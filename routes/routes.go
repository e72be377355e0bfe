package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/energeist/dockerized-climbunity/controllers"
	"github.com/energeist/dockerized-climbunity/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.Default())
	r.LoadHTMLGlob("templates/*")
	r.Static("/static", "./static")

	// Public API routes

	api := r.Group("/api")
	{
		api.POST("/signup", controllers.SignupHandler(db))
		api.POST("/login", controllers.LoginHandler(db))
		api.POST("/refresh", controllers.RefreshTokenHandler(db))
		api.POST("/logout", controllers.LogoutHandler(db))

		api.GET("/venues", controllers.ListVenues(db))
		api.GET("/venues/:id", controllers.GetVenue(db))
		api.GET("/venues/:id/appointments", controllers.ListVenueAppointments(db))
		api.GET("/routes", controllers.ListRoutes(db))
		api.GET("/routes/:id", controllers.GetRoute(db))
		api.GET("/users", controllers.ListUsers(db))
		api.GET("/users/:id", controllers.GetUser(db))
		api.GET("/users/:id/ascents", controllers.GetUserAscents(db))
		api.GET("/appointments/:id", controllers.GetAppointment(db))
	}

	// Authenticated API routes

	auth := r.Group("/api").Use(middlewares.AuthMiddleware())
	{
		auth.POST("/venues", controllers.CreateVenue(db))
		auth.PUT("/venues/:id", controllers.UpdateVenue(db))
		auth.DELETE("/venues/:id", controllers.DeleteVenue(db))

		auth.POST("/routes", controllers.CreateRoute(db))
		auth.PUT("/routes/:id", controllers.UpdateRoute(db))
		auth.DELETE("/routes/:id", controllers.DeleteRoute(db))

		auth.POST("/routes/:id/ascents", controllers.LogAscent(db))
		auth.DELETE("/ascents/:id", controllers.DeleteAscent(db))

		auth.POST("/routes/:id/project", controllers.AddProject(db))
		auth.DELETE("/routes/:id/project", controllers.RemoveProject(db))
		auth.GET("/projects", controllers.GetProjects(db))

		auth.POST("/appointments", controllers.CreateAppointment(db))
		auth.POST("/appointments/:id/join", controllers.JoinAppointment(db))
		auth.POST("/appointments/:id/leave", controllers.LeaveAppointment(db))
		auth.DELETE("/appointments/:id", controllers.DeleteAppointment(db))
		auth.GET("/my/appointments", controllers.ListMyAppointments(db))

		auth.PUT("/users/:id", controllers.UpdateProfile(db))
	}

	// HTML pages

	pages := r.Group("/").Use(middlewares.OptionalAuth())
	{
		pages.GET("/", controllers.HomePage(db))
		pages.GET("/venue/:id", controllers.VenueDetailPage(db))
		pages.GET("/route/:id", controllers.RouteDetailPage(db))
		pages.GET("/profile/:id", controllers.UserDetailPage(db))
	}

	r.GET("/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{"Next": c.Query("next")})
	})
	r.GET("/signup", func(c *gin.Context) {
		c.HTML(http.StatusOK, "signup.html", gin.H{})
	})

	// Fallback for unknown routes

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
	})

	return r
}
