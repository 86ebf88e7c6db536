// Package websocket provides the live-refresh channel between the portal
// server and open roster pages.
// file: websocket/hub.go
package websocket

import (
	"sync"

	"activities-portal/logger"
)

// connections tracks all active portal pages.
var (
	connections     = make(map[*Connection]bool)
	connectionsLock sync.Mutex
)

// broadcast is the channel feeding every active connection.
var broadcast = make(chan []byte, 64)

// HandleMessages listens on the broadcast channel and fans each message out
// to every connected page. Run it once, in its own goroutine.
func HandleMessages() {
	for msg := range broadcast {
		connectionsLock.Lock()
		for c := range connections {
			select {
			case c.send <- msg:
			default:
				logger.Warn.Printf("Dropping broadcast message for connection %v", c.conn.RemoteAddr())
			}
		}
		connectionsLock.Unlock()
	}
}

func registerConnection(c *Connection) {
	connectionsLock.Lock()
	connections[c] = true
	count := len(connections)
	connectionsLock.Unlock()
	logger.Info.Printf("[registerConnection] Portal page connected; %d active", count)
}

func unregisterConnection(c *Connection) {
	connectionsLock.Lock()
	if _, ok := connections[c]; ok {
		delete(connections, c)
		close(c.send)
	}
	count := len(connections)
	connectionsLock.Unlock()
	logger.Info.Printf("[unregisterConnection] Portal page disconnected; %d active", count)
}

// InitTest resets the hub's shared state between tests.
func InitTest() {
	connectionsLock.Lock()
	defer connectionsLock.Unlock()
	for c := range connections {
		delete(connections, c)
	}
	for {
		select {
		case <-broadcast:
		default:
			return
		}
	}
}
