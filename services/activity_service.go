// Package services: services/activity_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"activities-portal/logger"
	"activities-portal/models"
)

// ----------------------- errors -----------------------

// APIError is an application-level failure: the server answered with a
// non-success status and (usually) a structured `detail` body. Anything else
// that goes wrong talking to the server is a plain transport error.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("activities api: %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("activities api: %d", e.Status)
}

// ----------------------- service interface -----------------------

// ActivityServiceInterface is the client surface of the activities API.
type ActivityServiceInterface interface {
	GetActivities(ctx context.Context) (models.ActivityCollection, error)
	Signup(ctx context.Context, activity, email string) (string, error)
	Unregister(ctx context.Context, activity, email string) error
}

// HTTPActivityService talks to a remote activities API over HTTP.
type HTTPActivityService struct {
	baseURL string
	client  *http.Client
}

// compile-time interface check
var _ ActivityServiceInterface = (*HTTPActivityService)(nil)

// NewHTTPActivityService creates a client for the API rooted at baseURL.
func NewHTTPActivityService(baseURL string) *HTTPActivityService {
	return &HTTPActivityService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// ----------------------- operations -----------------------

// GetActivities fetches the full activity collection. The server's key order
// is preserved in the returned collection.
func (s *HTTPActivityService) GetActivities(ctx context.Context) (models.ActivityCollection, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/activities", nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer closeBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode, Detail: decodeDetail(resp.Body)}
	}

	var collection models.ActivityCollection
	if err := json.NewDecoder(resp.Body).Decode(&collection); err != nil {
		return nil, err
	}
	return collection, nil
}

// Signup enrolls email into the named activity and returns the server's
// confirmation message. A non-success status comes back as *APIError.
func (s *HTTPActivityService) Signup(ctx context.Context, activity, email string) (string, error) {
	resp, err := s.post(ctx, activity, "signup", email)
	if err != nil {
		return "", err
	}
	defer closeBody(resp.Body)

	// the server always answers with a JSON body, success or not
	var body struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if decodeErr := json.NewDecoder(resp.Body).Decode(&body); decodeErr != nil {
		logger.Warn.Printf("Signup: undecodable response body (status %d): %v", resp.StatusCode, decodeErr)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &APIError{Status: resp.StatusCode, Detail: body.Detail}
	}
	return body.Message, nil
}

// Unregister removes email from the named activity. The success body is
// ignored; a non-success status comes back as *APIError.
func (s *HTTPActivityService) Unregister(ctx context.Context, activity, email string) error {
	resp, err := s.post(ctx, activity, "unregister", email)
	if err != nil {
		return err
	}
	defer closeBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return &APIError{Status: resp.StatusCode, Detail: decodeDetail(resp.Body)}
	}
	return nil
}

// ----------------------- helpers -----------------------

// post issues POST /activities/{name}/{action}?email={email} with both the
// activity name and the email percent-encoded.
func (s *HTTPActivityService) post(ctx context.Context, activity, action, email string) (*http.Response, error) {
	endpoint := fmt.Sprintf("%s/activities/%s/%s?email=%s",
		s.baseURL, url.PathEscape(activity), action, url.QueryEscape(email))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, err
	}
	return s.client.Do(req)
}

// decodeDetail pulls the `detail` field out of an error body, tolerating
// bodies that are not the expected shape.
func decodeDetail(r io.Reader) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	return body.Detail
}

func closeBody(c io.Closer) {
	if err := c.Close(); err != nil {
		logger.Warn.Printf("Error closing response body: %v", err)
	}
}
