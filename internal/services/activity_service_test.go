package services

import (
	"context"
	"testing"

	"github.com/mergington-high/activities-api/internal/models"
	"github.com/mergington-high/activities-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *ActivityService {
	store := repository.NewMemoryStore(map[string]models.Activity{
		"Baseball Team": {
			Description:     "Join the school baseball team",
			Schedule:        "Wednesdays and Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"alex@mergington.edu"},
		},
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{},
		},
	})
	return NewActivityService(store)
}

func TestListActivities(t *testing.T) {
	service := newTestService()

	activities, err := service.ListActivities(context.Background())
	require.NoError(t, err)
	assert.Len(t, activities, 2)
	assert.Equal(t, []string{"alex@mergington.edu"}, activities["Baseball Team"].Participants)
}

func TestSignUp(t *testing.T) {
	service := newTestService()

	message, err := service.SignUp(context.Background(), "Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, "Signed up newstudent@mergington.edu for Chess Club", message)

	activities, err := service.ListActivities(context.Background())
	require.NoError(t, err)
	assert.Contains(t, activities["Chess Club"].Participants, "newstudent@mergington.edu")
}

func TestSignUpUnknownActivity(t *testing.T) {
	service := newTestService()

	_, err := service.SignUp(context.Background(), "Robotics Club", "ada@mergington.edu")
	assert.ErrorIs(t, err, repository.ErrActivityNotFound)
	assert.Contains(t, err.Error(), "not found")
}

func TestSignUpDuplicate(t *testing.T) {
	service := newTestService()

	_, err := service.SignUp(context.Background(), "Baseball Team", "alex@mergington.edu")
	assert.ErrorIs(t, err, repository.ErrAlreadySignedUp)
	assert.Contains(t, err.Error(), "already signed up")

	activities, err := service.ListActivities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alex@mergington.edu"}, activities["Baseball Team"].Participants)
}

func TestSignUpEmailRequired(t *testing.T) {
	service := newTestService()

	_, err := service.SignUp(context.Background(), "Chess Club", "")
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = service.SignUp(context.Background(), "Chess Club", "   ")
	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestSignUpMultipleStudents(t *testing.T) {
	service := newTestService()
	students := []string{
		"student1@mergington.edu",
		"student2@mergington.edu",
		"student3@mergington.edu",
	}

	for _, email := range students {
		_, err := service.SignUp(context.Background(), "Chess Club", email)
		require.NoError(t, err)
	}

	activities, err := service.ListActivities(context.Background())
	require.NoError(t, err)
	for _, email := range students {
		assert.Contains(t, activities["Chess Club"].Participants, email)
	}
}

func TestUnregister(t *testing.T) {
	service := newTestService()

	message, err := service.Unregister(context.Background(), "Baseball Team", "alex@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, "Unregistered alex@mergington.edu from Baseball Team", message)

	activities, err := service.ListActivities(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, activities["Baseball Team"].Participants, "alex@mergington.edu")
}

func TestUnregisterErrors(t *testing.T) {
	service := newTestService()

	_, err := service.Unregister(context.Background(), "Robotics Club", "ada@mergington.edu")
	assert.ErrorIs(t, err, repository.ErrActivityNotFound)

	_, err = service.Unregister(context.Background(), "Chess Club", "absent@mergington.edu")
	assert.ErrorIs(t, err, repository.ErrNotSignedUp)
	assert.Contains(t, err.Error(), "not signed up")

	_, err = service.Unregister(context.Background(), "Chess Club", "")
	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestSignUpThenUnregisterRoundTrip(t *testing.T) {
	service := newTestService()
	email := "chessplayer@mergington.edu"

	_, err := service.SignUp(context.Background(), "Chess Club", email)
	require.NoError(t, err)

	_, err = service.Unregister(context.Background(), "Chess Club", email)
	require.NoError(t, err)

	activities, err := service.ListActivities(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, activities["Chess Club"].Participants, email)
	assert.Empty(t, activities["Chess Club"].Participants)
}
