// Package registry - registry/service.go
package registry

import (
	"context"
	"errors"
	"net/http"

	"activities-portal/models"
	"activities-portal/services"
)

// Service adapts a Registry to the activity service interface so the portal
// can run against the in-process registry without a loopback HTTP hop.
// Failures are reported as *services.APIError with the same statuses the
// HTTP handlers would use, so the controller treats both backends alike.
type Service struct {
	reg *Registry
}

var _ services.ActivityServiceInterface = (*Service)(nil)

// NewService wraps the given registry.
func NewService(reg *Registry) *Service {
	return &Service{reg: reg}
}

// GetActivities returns the registry snapshot.
func (s *Service) GetActivities(_ context.Context) (models.ActivityCollection, error) {
	return s.reg.Activities(), nil
}

// Signup enrolls email into the named activity.
func (s *Service) Signup(_ context.Context, activity, email string) (string, error) {
	message, err := s.reg.Signup(activity, email)
	if err != nil {
		return "", asAPIError(err)
	}
	return message, nil
}

// Unregister removes email from the named activity.
func (s *Service) Unregister(_ context.Context, activity, email string) error {
	if _, err := s.reg.Unregister(activity, email); err != nil {
		return asAPIError(err)
	}
	return nil
}

func asAPIError(err error) *services.APIError {
	status := http.StatusBadRequest
	if errors.Is(err, ErrActivityNotFound) {
		status = http.StatusNotFound
	}
	return &services.APIError{Status: status, Detail: err.Error()}
}
