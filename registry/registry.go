// Package registry holds the authoritative activity roster and the API
// serving it. It is the in-process stand-in for the remote activities
// service; the portal can also be pointed at an external deployment.
// File: registry/registry.go
package registry

import (
	"errors"
	"fmt"
	"sync"

	"activities-portal/logger"
	"activities-portal/models"
)

// ----------------------- errors -----------------------

// Sentinel errors for roster mutations. Handlers map these onto HTTP
// statuses and `detail` bodies.
var (
	ErrActivityNotFound = errors.New("Activity not found")
	ErrAlreadySignedUp  = errors.New("Student is already signed up for this activity")
	ErrNotSignedUp      = errors.New("Student is not signed up for this activity")
)

// ----------------------- registry -----------------------

// Registry is the in-memory activity store. Insertion order of the seed is
// preserved so GET /activities always lists activities the same way.
// Capacity is advertised but not enforced; over-enrollment shows up as a
// negative spots-left count on the portal.
type Registry struct {
	mu         sync.Mutex
	activities models.ActivityCollection
}

// NewRegistry creates a registry holding the given seed collection.
func NewRegistry(seed models.ActivityCollection) *Registry {
	r := &Registry{}
	for _, entry := range seed {
		activity := entry.Activity
		// participants slice is owned by the registry from here on
		activity.Participants = append([]string(nil), entry.Activity.Participants...)
		r.activities = append(r.activities, models.ActivityEntry{Name: entry.Name, Activity: activity})
	}
	return r
}

// Activities returns a snapshot of the full collection in seed order.
func (r *Registry) Activities() models.ActivityCollection {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make(models.ActivityCollection, 0, len(r.activities))
	for _, entry := range r.activities {
		activity := entry.Activity
		activity.Participants = append([]string(nil), entry.Activity.Participants...)
		snapshot = append(snapshot, models.ActivityEntry{Name: entry.Name, Activity: activity})
	}
	return snapshot
}

// Signup enrolls email into the named activity and returns the confirmation
// message.
func (r *Registry) Signup(name, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.find(name)
	if !ok {
		return "", ErrActivityNotFound
	}
	for _, participant := range r.activities[idx].Activity.Participants {
		if participant == email {
			logger.Warn.Printf("Signup rejected: %s already enrolled in %s", email, name)
			return "", ErrAlreadySignedUp
		}
	}

	r.activities[idx].Activity.Participants = append(r.activities[idx].Activity.Participants, email)
	logger.Info.Printf("Signed up %s for %s", email, name)
	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// Unregister removes email from the named activity and returns the
// confirmation message.
func (r *Registry) Unregister(name, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.find(name)
	if !ok {
		return "", ErrActivityNotFound
	}

	participants := r.activities[idx].Activity.Participants
	for i, participant := range participants {
		if participant == email {
			r.activities[idx].Activity.Participants = append(participants[:i], participants[i+1:]...)
			logger.Info.Printf("Unregistered %s from %s", email, name)
			return fmt.Sprintf("Unregistered %s from %s", email, name), nil
		}
	}

	logger.Warn.Printf("Unregister rejected: %s not enrolled in %s", email, name)
	return "", ErrNotSignedUp
}

// find returns the index of the named activity. Caller holds the lock.
func (r *Registry) find(name string) (int, bool) {
	for i, entry := range r.activities {
		if entry.Name == name {
			return i, true
		}
	}
	return 0, false
}
