// Package middleware provides request filters for the application.
// File: middleware/no_cache.go
package middleware

import (
	"github.com/gin-gonic/gin"
)

// NoCache forbids browser and proxy caching of the roster pages. Every view
// of the portal must reflect a fresh fetch from the activities API, never a
// stored copy.
func NoCache(c *gin.Context) {
	c.Writer.Header().Set("Cache-Control", "no-store")
	c.Writer.Header().Set("Pragma", "no-cache")
	c.Next()
}
