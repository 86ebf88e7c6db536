// Package models defines data structures used across the application.
// File: models/activity.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ----------------------- activity model -----------------------

// Activity represents a single enrollable offering as served by the
// activities API.
type Activity struct {
	Description     string   `json:"description"`      // Free-text description
	Schedule        string   `json:"schedule"`         // Free-text schedule
	MaxParticipants int      `json:"max_participants"` // Capacity
	Participants    []string `json:"participants"`     // Enrolled emails, server order
}

// SpotsLeft returns capacity minus current enrollment. The result can be
// negative when the server has over-enrolled; callers display it as-is.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// UnmarshalJSON decodes an activity while tolerating a malformed
// participants field: anything that is not a JSON array is treated as an
// empty participant list rather than a decode failure.
func (a *Activity) UnmarshalJSON(data []byte) error {
	var raw struct {
		Description     string          `json:"description"`
		Schedule        string          `json:"schedule"`
		MaxParticipants int             `json:"max_participants"`
		Participants    json.RawMessage `json:"participants"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	a.Description = raw.Description
	a.Schedule = raw.Schedule
	a.MaxParticipants = raw.MaxParticipants

	a.Participants = nil
	if len(raw.Participants) > 0 {
		var participants []string
		if err := json.Unmarshal(raw.Participants, &participants); err == nil {
			a.Participants = participants
		}
	}
	return nil
}

// ----------------------- activity collection -----------------------

// ActivityEntry pairs an activity with its name for ordered traversal.
type ActivityEntry struct {
	Name     string
	Activity Activity
}

// ActivityCollection is the full set of activities keyed by name. The server
// serialises it as a JSON object whose key order is meaningful, so it is held
// as an ordered sequence rather than a Go map.
type ActivityCollection []ActivityEntry

// Get returns the activity with the given name.
func (c ActivityCollection) Get(name string) (Activity, bool) {
	for _, entry := range c {
		if entry.Name == name {
			return entry.Activity, true
		}
	}
	return Activity{}, false
}

// Set replaces the named activity in place, preserving its position, or
// appends it when absent.
func (c *ActivityCollection) Set(name string, activity Activity) {
	for i, entry := range *c {
		if entry.Name == name {
			(*c)[i].Activity = activity
			return
		}
	}
	*c = append(*c, ActivityEntry{Name: name, Activity: activity})
}

// MarshalJSON writes the collection as a JSON object in entry order.
func (c ActivityCollection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(entry.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		activity, err := json.Marshal(entry.Activity)
		if err != nil {
			return nil, err
		}
		buf.Write(activity)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object token by token so the server's key order
// survives the decode.
func (c *ActivityCollection) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("activity collection: expected JSON object, got %v", tok)
	}

	var out ActivityCollection
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("activity collection: expected string key, got %v", keyTok)
		}

		var activity Activity
		if err := dec.Decode(&activity); err != nil {
			return err
		}
		out = append(out, ActivityEntry{Name: name, Activity: activity})
	}

	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}

	*c = out
	return nil
}
