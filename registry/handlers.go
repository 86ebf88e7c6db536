// Package registry - registry/handlers.go
package registry

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"activities-portal/logger"
)

// RegisterRoutes mounts the activities API onto the router:
//
//	GET  /activities
//	POST /activities/:name/signup?email=...
//	POST /activities/:name/unregister?email=...
func RegisterRoutes(router gin.IRouter, reg *Registry) {
	router.GET("/activities", func(c *gin.Context) {
		c.JSON(http.StatusOK, reg.Activities())
	})
	router.POST("/activities/:name/signup", func(c *gin.Context) {
		handleMutation(c, reg.Signup)
	})
	router.POST("/activities/:name/unregister", func(c *gin.Context) {
		handleMutation(c, reg.Unregister)
	})
}

// handleMutation runs one roster mutation and writes the API's
// message/detail response shape.
func handleMutation(c *gin.Context, op func(name, email string) (string, error)) {
	name := c.Param("name")
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Missing email"})
		return
	}

	message, err := op(name, email)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadySignedUp), errors.Is(err, ErrNotSignedUp):
		return http.StatusBadRequest
	default:
		logger.Error.Printf("Unexpected registry error: %v", err)
		return http.StatusInternalServerError
	}
}
