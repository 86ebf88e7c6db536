// Package websocket - websocket/events.go
package websocket

import (
	"encoding/json"

	"activities-portal/logger"
	"activities-portal/models"
)

// Hub broadcasts roster events to connected pages. It satisfies the
// controllers' Broadcaster interface.
type Hub struct{}

// RosterUpdated tells every open page the roster changed and should be
// re-fetched.
func (Hub) RosterUpdated() {
	send(map[string]interface{}{"action": "rosterUpdated"})
}

// StatusChanged pushes a new status notice to every open page.
func (Hub) StatusChanged(notice models.Notice) {
	send(map[string]interface{}{"action": "status", "notice": notice})
}

// StatusCleared tells every open page to hide the status banner.
func (Hub) StatusCleared() {
	send(map[string]interface{}{"action": "clearStatus"})
}

func send(message map[string]interface{}) {
	msg, err := json.Marshal(message)
	if err != nil {
		logger.Error.Printf("Error marshalling message: %v", err)
		return
	}
	select {
	case broadcast <- msg:
	default:
		logger.Warn.Printf("Broadcast channel full; dropping %s", msg)
	}
}
