package routes

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/energeist/dockerized-climbunity/models"
	"github.com/energeist/dockerized-climbunity/services"
	"github.com/energeist/dockerized-climbunity/utils"
)

var testDb *gorm.DB

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")

	// Templates and static assets are resolved relative to the repo root.
	if err := os.Chdir(".."); err != nil {
		panic(err)
	}

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{}, &models.Venue{}, &models.Route{}, &models.Ascent{},
		&models.Appointment{}, &models.Style{}, &models.Tag{}, &models.RefreshToken{},
	)
	if err != nil {
		panic(err)
	}

	testDb = db
	os.Exit(m.Run())
}

// Scenario from the product walkthrough: a venue page shows the venue and
// its routes to everyone, but management affordances only to a logged-in
// viewer.
func TestVenueDetailPage(t *testing.T) {
	userSvc := services.NewUserService(testDb)
	user, err := userSvc.Register(services.RegisterRequest{
		Username:  "me1",
		Password:  "password123",
		Email:     "test123@test.com",
		FirstName: "Test",
		Address:   "123 Test St",
	})
	require.NoError(t, err)

	venue, err := services.NewVenueService(testDb).CreateVenue(services.VenueRequest{
		Name:    "Rock Oasis",
		Address: "Dundas and Carlaw",
	})
	require.NoError(t, err)

	_, err = services.NewRouteService(testDb).CreateRoute(services.RouteRequest{
		VenueID: venue.ID,
		Name:    "Silence",
		Grade:   "9c+",
	})
	require.NoError(t, err)

	r := SetupRouter(testDb)

	// logged out: content visible, no management affordances
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/venue/%d", venue.ID), nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Rock Oasis")
	assert.Contains(t, body, "Dundas and Carlaw")
	assert.Contains(t, body, "Silence")
	assert.NotContains(t, body, "Delete route")
	assert.NotContains(t, body, "Delete venue")

	// logged in: management affordances present
	token, err := utils.CreateToken(user.ID, false)
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/venue/%d", venue.ID), nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body = w.Body.String()
	assert.Contains(t, body, "Delete route")
	assert.Contains(t, body, "Delete venue")
}

func TestMutatingRoutesRequireAuth(t *testing.T) {
	r := SetupRouter(testDb)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/venues", strings.NewReader(`{"name":"x","address":"y"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUnknownRouteReturns404(t *testing.T) {
	r := SetupRouter(testDb)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/definitely/not/here", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
