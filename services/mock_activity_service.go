// Package services: services/mock_activity_service.go
package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"activities-portal/models"
)

// Ensure MockActivityService implements ActivityServiceInterface
var _ ActivityServiceInterface = (*MockActivityService)(nil)

// MockActivityService is a mock implementation for testing and extends `mock.Mock`
type MockActivityService struct {
	mock.Mock
}

// GetActivities (Mocked)
func (m *MockActivityService) GetActivities(ctx context.Context) (models.ActivityCollection, error) {
	args := m.Called(ctx)
	collection, _ := args.Get(0).(models.ActivityCollection)
	return collection, args.Error(1)
}

// Signup (Mocked)
func (m *MockActivityService) Signup(ctx context.Context, activity, email string) (string, error) {
	args := m.Called(ctx, activity, email)
	return args.String(0), args.Error(1)
}

// Unregister (Mocked)
func (m *MockActivityService) Unregister(ctx context.Context, activity, email string) error {
	args := m.Called(ctx, activity, email)
	return args.Error(0)
}
