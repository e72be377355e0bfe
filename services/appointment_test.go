package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/energeist/dockerized-climbunity/models"
)

func TestValidateAppointmentTime(t *testing.T) {
	now := time.Now()

	var validationErr *ValidationError
	assert.ErrorAs(t, validateAppointmentTime(now, now), &validationErr, "exactly now must fail")
	assert.ErrorAs(t, validateAppointmentTime(now.Add(-time.Hour), now), &validationErr)
	assert.NoError(t, validateAppointmentTime(now.Add(time.Microsecond), now), "any future instant succeeds")
}

func TestCreateAppointment(t *testing.T) {
	defer clearDatabase()
	creator := createTestUser(t, "me1", "test123@test.com")
	guest := createTestUser(t, "me2", "test234@test.com")
	venue := createTestVenue(t)
	svc := NewAppointmentService(testDb)

	appointment, err := svc.CreateAppointment(creator.ID, AppointmentRequest{
		VenueID:             venue.ID,
		AppointmentDatetime: time.Now().Add(48 * time.Hour),
		GuestIDs:            []uint{guest.ID},
	})
	require.NoError(t, err)

	got, err := svc.GetAppointment(appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, creator.ID, got.CreatedBy)
	assert.Equal(t, venue.ID, got.VenueID)
	assert.Len(t, got.Attendants, 2, "creator and guest both attend")
}

func TestCreateAppointmentInPast(t *testing.T) {
	defer clearDatabase()
	creator := createTestUser(t, "me1", "test123@test.com")
	venue := createTestVenue(t)
	svc := NewAppointmentService(testDb)

	_, err := svc.CreateAppointment(creator.ID, AppointmentRequest{
		VenueID:             venue.ID,
		AppointmentDatetime: time.Now().Add(-time.Minute),
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	var count int64
	testDb.Model(&models.Appointment{}).Count(&count)
	assert.Zero(t, count)
}

func TestJoinAppointment(t *testing.T) {
	defer clearDatabase()
	creator := createTestUser(t, "me1", "test123@test.com")
	joiner := createTestUser(t, "me2", "test234@test.com")
	venue := createTestVenue(t)
	svc := NewAppointmentService(testDb)

	appointment, err := svc.CreateAppointment(creator.ID, AppointmentRequest{
		VenueID:             venue.ID,
		AppointmentDatetime: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, svc.JoinAppointment(joiner.ID, appointment.ID))

	got, err := svc.GetAppointment(appointment.ID)
	require.NoError(t, err)
	assert.Len(t, got.Attendants, 2)

	// joining twice stays at two
	require.NoError(t, svc.JoinAppointment(joiner.ID, appointment.ID))
	got, err = svc.GetAppointment(appointment.ID)
	require.NoError(t, err)
	assert.Len(t, got.Attendants, 2)
}

func TestLeaveAppointment(t *testing.T) {
	defer clearDatabase()
	creator := createTestUser(t, "me1", "test123@test.com")
	joiner := createTestUser(t, "me2", "test234@test.com")
	venue := createTestVenue(t)
	svc := NewAppointmentService(testDb)

	appointment, err := svc.CreateAppointment(creator.ID, AppointmentRequest{
		VenueID:             venue.ID,
		AppointmentDatetime: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	require.NoError(t, svc.JoinAppointment(joiner.ID, appointment.ID))

	require.NoError(t, svc.LeaveAppointment(joiner.ID, appointment.ID))
	got, err := svc.GetAppointment(appointment.ID)
	require.NoError(t, err)
	assert.Len(t, got.Attendants, 1)

	// leaving again is a no-op
	require.NoError(t, svc.LeaveAppointment(joiner.ID, appointment.ID))
}

func TestDeleteAppointmentClearsAttendants(t *testing.T) {
	defer clearDatabase()
	creator := createTestUser(t, "me1", "test123@test.com")
	joiner := createTestUser(t, "me2", "test234@test.com")
	venue := createTestVenue(t)
	svc := NewAppointmentService(testDb)

	appointment, err := svc.CreateAppointment(creator.ID, AppointmentRequest{
		VenueID:             venue.ID,
		AppointmentDatetime: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	require.NoError(t, svc.JoinAppointment(joiner.ID, appointment.ID))

	require.NoError(t, svc.DeleteAppointment(appointment.ID))

	for _, userID := range []uint{creator.ID, joiner.ID} {
		appointments, err := svc.ListUserAppointments(userID)
		require.NoError(t, err)
		assert.Empty(t, appointments, "user %d must have no appointment memberships left", userID)
	}

	var count int64
	testDb.Table("appointment_guests").Count(&count)
	assert.Zero(t, count)
}
