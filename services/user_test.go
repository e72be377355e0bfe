package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/energeist/dockerized-climbunity/models"
)

var registerRequest = RegisterRequest{
	Username:  "me1",
	Password:  "password123",
	Email:     "test123@test.com",
	FirstName: "Test",
	LastName:  "User",
	Address:   "123 Test St",
	HasGear:   true,
}

func TestRegister(t *testing.T) {
	defer clearDatabase()
	svc := NewUserService(testDb)

	user, err := svc.Register(registerRequest)
	require.NoError(t, err)
	assert.Equal(t, "me1", user.Username)
	assert.Equal(t, "test123@test.com", user.Email)
	assert.False(t, user.IsAdmin)
	assert.NotEqual(t, "password123", user.Password, "password must be stored hashed")
}

func TestRegisterSetsStylePreferences(t *testing.T) {
	defer clearDatabase()
	styles := seedTestStyles(t, "boulder", "lead")
	svc := NewUserService(testDb)

	req := registerRequest
	req.StyleIDs = []uint{styles[0].ID, styles[1].ID}
	user, err := svc.Register(req)
	require.NoError(t, err)

	got, err := svc.GetUser(user.ID)
	require.NoError(t, err)
	assert.Len(t, got.Styles, 2)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	defer clearDatabase()
	svc := NewUserService(testDb)

	_, err := svc.Register(registerRequest)
	require.NoError(t, err)

	dup := registerRequest
	dup.Email = "other@test.com"
	_, err = svc.Register(dup)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "username", validationErr.Field)

	var count int64
	testDb.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count, "failed signup must not change the store")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	defer clearDatabase()
	svc := NewUserService(testDb)

	_, err := svc.Register(registerRequest)
	require.NoError(t, err)

	dup := registerRequest
	dup.Username = "me2"
	_, err = svc.Register(dup)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "email", validationErr.Field)

	var count int64
	testDb.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRegisterShortPassword(t *testing.T) {
	defer clearDatabase()
	svc := NewUserService(testDb)

	req := registerRequest
	req.Password = "short"
	_, err := svc.Register(req)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "password", validationErr.Field)
}

func TestAuthenticate(t *testing.T) {
	defer clearDatabase()
	createTestUser(t, "me1", "test123@test.com")
	svc := NewUserService(testDb)

	user, err := svc.Authenticate("me1", "password123")
	require.NoError(t, err)
	assert.Equal(t, "me1", user.Username)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	defer clearDatabase()
	svc := NewUserService(testDb)

	_, err := svc.Authenticate("nobody", "password123")

	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	defer clearDatabase()
	createTestUser(t, "me1", "test123@test.com")
	svc := NewUserService(testDb)

	_, err := svc.Authenticate("me1", "wrongpassword")

	var credentialsErr *InvalidCredentialsError
	assert.ErrorAs(t, err, &credentialsErr)
}

func TestUpdateProfileReplacesStyles(t *testing.T) {
	defer clearDatabase()
	styles := seedTestStyles(t, "boulder", "lead", "trad")
	user := createTestUser(t, "me1", "test123@test.com")
	svc := NewUserService(testDb)

	_, err := svc.UpdateProfile(user.ID, ProfileUpdateRequest{
		FirstName: "Test",
		Address:   "123 Test St",
		HasGear:   true,
		StyleIDs:  []uint{styles[0].ID, styles[1].ID},
	})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(user.ID, ProfileUpdateRequest{
		FirstName: "Test",
		Address:   "456 Other St",
		StyleIDs:  []uint{styles[2].ID},
	})
	require.NoError(t, err)

	got, err := svc.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "456 Other St", got.Address)
	require.Len(t, got.Styles, 1, "edit must replace the style set, not append")
	assert.Equal(t, "trad", got.Styles[0].Style)
}
