// file: registry/registry_test.go
package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activities-portal/models"
	"activities-portal/registry"
)

func seedCollection() models.ActivityCollection {
	return models.ActivityCollection{
		{Name: "Chess Club", Activity: models.Activity{
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		}},
		{Name: "Soccer Team", Activity: models.Activity{
			Description:     "Competitive soccer training and matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 22,
			Participants:    []string{"liam@mergington.edu", "noah@mergington.edu"},
		}},
		{Name: "Drama Club", Activity: models.Activity{
			Description:     "Acting workshops and theatrical productions",
			Schedule:        "Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 20,
		}},
	}
}

func TestActivities_SnapshotInSeedOrder(t *testing.T) {
	reg := registry.NewRegistry(seedCollection())

	snapshot := reg.Activities()
	require.Len(t, snapshot, 3)
	assert.Equal(t, "Chess Club", snapshot[0].Name)
	assert.Equal(t, "Soccer Team", snapshot[1].Name)
	assert.Equal(t, "Drama Club", snapshot[2].Name)
}

// Mutating a snapshot must not leak into the registry.
func TestActivities_SnapshotIsIsolated(t *testing.T) {
	reg := registry.NewRegistry(seedCollection())

	snapshot := reg.Activities()
	snapshot[0].Activity.Participants[0] = "tampered@mergington.edu"

	fresh := reg.Activities()
	assert.Equal(t, "michael@mergington.edu", fresh[0].Activity.Participants[0])
}

func TestSignup_AddsParticipant(t *testing.T) {
	reg := registry.NewRegistry(seedCollection())

	message, err := reg.Signup("Chess Club", "test.student@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, "Signed up test.student@mergington.edu for Chess Club", message)

	chess, _ := reg.Activities().Get("Chess Club")
	assert.Contains(t, chess.Participants, "test.student@mergington.edu")
	assert.Len(t, chess.Participants, 3)
}

func TestSignup_UnknownActivity(t *testing.T) {
	reg := registry.NewRegistry(seedCollection())

	_, err := reg.Signup("Nonexistent Activity", "test.student@mergington.edu")
	assert.ErrorIs(t, err, registry.ErrActivityNotFound)
}

func TestSignup_DuplicateRejected(t *testing.T) {
	reg := registry.NewRegistry(seedCollection())

	_, err := reg.Signup("Chess Club", "test.student@mergington.edu")
	require.NoError(t, err)

	_, err = reg.Signup("Chess Club", "test.student@mergington.edu")
	assert.ErrorIs(t, err, registry.ErrAlreadySignedUp)
	assert.Contains(t, err.Error(), "already signed up")
}

// Capacity is advertised, not enforced; the server may over-enroll.
func TestSignup_OverEnrollmentAllowed(t *testing.T) {
	reg := registry.NewRegistry(models.ActivityCollection{
		{Name: "Tiny Club", Activity: models.Activity{MaxParticipants: 1}},
	})

	_, err := reg.Signup("Tiny Club", "a@mergington.edu")
	require.NoError(t, err)
	_, err = reg.Signup("Tiny Club", "b@mergington.edu")
	require.NoError(t, err)

	tiny, _ := reg.Activities().Get("Tiny Club")
	assert.Equal(t, -1, tiny.SpotsLeft())
}

func TestUnregister_RemovesParticipant(t *testing.T) {
	reg := registry.NewRegistry(seedCollection())

	message, err := reg.Unregister("Soccer Team", "liam@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, "Unregistered liam@mergington.edu from Soccer Team", message)

	soccer, _ := reg.Activities().Get("Soccer Team")
	assert.NotContains(t, soccer.Participants, "liam@mergington.edu")
	assert.Len(t, soccer.Participants, 1)
}

func TestUnregister_UnknownActivity(t *testing.T) {
	reg := registry.NewRegistry(seedCollection())

	_, err := reg.Unregister("Nonexistent Activity", "test.student@mergington.edu")
	assert.ErrorIs(t, err, registry.ErrActivityNotFound)
}

func TestUnregister_NotSignedUp(t *testing.T) {
	reg := registry.NewRegistry(seedCollection())

	_, err := reg.Unregister("Drama Club", "test.student@mergington.edu")
	assert.ErrorIs(t, err, registry.ErrNotSignedUp)
	assert.Contains(t, err.Error(), "not signed up")
}
