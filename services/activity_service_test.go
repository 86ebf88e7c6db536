// file: services/activity_service_test.go
package services_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activities-portal/services"
)

// Test that GetActivities returns the collection in the server's key order.
func TestGetActivities_PreservesServerOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/activities", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"Soccer Team": {"description": "soccer", "schedule": "Tue", "max_participants": 22, "participants": ["liam@mergington.edu"]},
			"Chess Club": {"description": "chess", "schedule": "Fri", "max_participants": 12, "participants": []}
		}`))
	}))
	defer server.Close()

	svc := services.NewHTTPActivityService(server.URL)
	collection, err := svc.GetActivities(context.Background())
	require.NoError(t, err)

	require.Len(t, collection, 2)
	assert.Equal(t, "Soccer Team", collection[0].Name)
	assert.Equal(t, "Chess Club", collection[1].Name)
}

// A non-200 roster fetch surfaces as an APIError.
func TestGetActivities_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail": "boom"}`))
	}))
	defer server.Close()

	svc := services.NewHTTPActivityService(server.URL)
	_, err := svc.GetActivities(context.Background())

	var apiErr *services.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "boom", apiErr.Detail)
}

// A dead server surfaces as a plain transport error, not an APIError.
func TestGetActivities_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	svc := services.NewHTTPActivityService(server.URL)
	_, err := svc.GetActivities(context.Background())

	require.Error(t, err)
	var apiErr *services.APIError
	assert.False(t, errors.As(err, &apiErr))
}

// Signup percent-encodes the activity name and email into the request.
func TestSignup_EncodesNameAndEmail(t *testing.T) {
	var gotPath, gotEmail string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotEmail = r.URL.Query().Get("email")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": "Signed up a+b@mergington.edu for Chess Club"}`))
	}))
	defer server.Close()

	svc := services.NewHTTPActivityService(server.URL)
	message, err := svc.Signup(context.Background(), "Chess Club", "a+b@mergington.edu")
	require.NoError(t, err)

	assert.Equal(t, "/activities/Chess%20Club/signup", gotPath)
	assert.Equal(t, "a+b@mergington.edu", gotEmail)
	assert.Equal(t, "Signed up a+b@mergington.edu for Chess Club", message)
}

// A rejected signup carries the server's detail text.
func TestSignup_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "Already signed up"}`))
	}))
	defer server.Close()

	svc := services.NewHTTPActivityService(server.URL)
	_, err := svc.Signup(context.Background(), "Chess Club", "a@b.com")

	var apiErr *services.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Already signed up", apiErr.Detail)
}

// An error body that is not JSON still produces an APIError, just without
// detail text.
func TestSignup_UndecodableErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	svc := services.NewHTTPActivityService(server.URL)
	_, err := svc.Signup(context.Background(), "Chess Club", "a@b.com")

	var apiErr *services.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Empty(t, apiErr.Detail)
}

// Unregister treats 200 as success and ignores the body.
func TestUnregister_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/activities/Drama%20Club/unregister", r.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": "whatever"}`))
	}))
	defer server.Close()

	svc := services.NewHTTPActivityService(server.URL)
	assert.NoError(t, svc.Unregister(context.Background(), "Drama Club", "a@b.com"))
}

func TestUnregister_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "Activity not found"}`))
	}))
	defer server.Close()

	svc := services.NewHTTPActivityService(server.URL)
	err := svc.Unregister(context.Background(), "Nonexistent", "a@b.com")

	var apiErr *services.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Activity not found", apiErr.Detail)
}
