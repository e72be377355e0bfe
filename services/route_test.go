package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/energeist/dockerized-climbunity/utils"
)

func TestCreateRoute(t *testing.T) {
	defer clearDatabase()
	venue := createTestVenue(t)
	svc := NewRouteService(testDb)

	route, err := svc.CreateRoute(RouteRequest{
		VenueID:      venue.ID,
		Name:         "Silence",
		Grade:        "9c+",
		RouteSetDate: datePtr(t, "2021-08-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, venue.ID, route.VenueID)
	assert.Equal(t, "Silence", route.Name)
}

func TestCreateRouteUnknownVenue(t *testing.T) {
	defer clearDatabase()
	svc := NewRouteService(testDb)

	_, err := svc.CreateRoute(RouteRequest{VenueID: 42, Name: "Nowhere"})

	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestCreateRoutePhotoFallback(t *testing.T) {
	defer clearDatabase()
	venue := createTestVenue(t)
	svc := NewRouteService(testDb)

	route, err := svc.CreateRoute(RouteRequest{
		VenueID:  venue.ID,
		Name:     "Silence",
		PhotoURL: "definitely-not-a-real-file.png",
	})
	require.NoError(t, err)
	assert.Equal(t, utils.DefaultRoutePhoto, route.PhotoURL)
}

func TestUpdateRouteReplacesStylesAndTags(t *testing.T) {
	defer clearDatabase()
	venue := createTestVenue(t)
	styles := seedTestStyles(t, "boulder", "lead")
	tags := seedTestTags(t, "crimpy", "dyno")
	svc := NewRouteService(testDb)

	route, err := svc.CreateRoute(RouteRequest{
		VenueID:  venue.ID,
		Name:     "Silence",
		StyleIDs: []uint{styles[0].ID},
		TagIDs:   []uint{tags[0].ID},
	})
	require.NoError(t, err)

	_, err = svc.UpdateRoute(route.ID, RouteRequest{
		Name:     "Silence",
		Grade:    "9c+",
		StyleIDs: []uint{styles[1].ID},
		TagIDs:   []uint{tags[1].ID},
	})
	require.NoError(t, err)

	got, err := svc.GetRoute(route.ID)
	require.NoError(t, err)
	assert.Equal(t, "9c+", got.Grade)
	require.Len(t, got.Styles, 1, "edit must replace the style set, not append")
	assert.Equal(t, "lead", got.Styles[0].Style)
	require.Len(t, got.Tags, 1, "edit must replace the tag set, not append")
	assert.Equal(t, "dyno", got.Tags[0].Tag)
}

func TestDeleteRouteCascadesAscents(t *testing.T) {
	defer clearDatabase()
	user := createTestUser(t, "me1", "test123@test.com")
	venue := createTestVenue(t)
	route := createTestRoute(t, venue.ID)

	ascentSvc := NewAscentService(testDb)
	_, err := ascentSvc.LogAscent(route.ID, user.ID, AscentRequest{SendType: "FLASH", SendRating: 4})
	require.NoError(t, err)

	svc := NewRouteService(testDb)
	require.NoError(t, svc.DeleteRoute(route.ID))

	var count int64
	testDb.Table("ascents").Where("route_id = ?", route.ID).Count(&count)
	assert.Zero(t, count)

	_, err = svc.GetRoute(route.ID)
	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestProjectListMembership(t *testing.T) {
	defer clearDatabase()
	user := createTestUser(t, "me1", "test123@test.com")
	venue := createTestVenue(t)
	route := createTestRoute(t, venue.ID)
	svc := NewRouteService(testDb)

	require.NoError(t, svc.AddProject(user.ID, route.ID))

	projects, err := svc.ListProjects(user.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Silence", projects[0].Name)

	// re-adding is a no-op, not a duplicate and not an error
	require.NoError(t, svc.AddProject(user.ID, route.ID))
	projects, err = svc.ListProjects(user.ID)
	require.NoError(t, err)
	assert.Len(t, projects, 1)

	require.NoError(t, svc.RemoveProject(user.ID, route.ID))
	projects, err = svc.ListProjects(user.ID)
	require.NoError(t, err)
	assert.Empty(t, projects)

	// removing a non-member is also a no-op
	require.NoError(t, svc.RemoveProject(user.ID, route.ID))
}

func TestAddProjectUnknownRoute(t *testing.T) {
	defer clearDatabase()
	user := createTestUser(t, "me1", "test123@test.com")
	svc := NewRouteService(testDb)

	err := svc.AddProject(user.ID, 777)

	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}
