// Package controllers file: controllers/roster_controller.go
package controllers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"activities-portal/logger"
	"activities-portal/models"
	"activities-portal/services"
)

// statusVisibleFor is how long an inline notice stays visible before it
// auto-hides. Variable so tests can shorten it.
var statusVisibleFor = 5 * time.Second

// Fallback texts for failures without a usable server detail.
const (
	genericDetailText    = "An error occurred"
	signupFailedText     = "Failed to sign up. Please try again."
	unregisterFailedText = "Failed to unregister. Please try again."
)

// Broadcaster pushes roster events to open portal pages. The websocket hub
// implements it; tests substitute a recorder.
type Broadcaster interface {
	RosterUpdated()
	StatusChanged(notice models.Notice)
	StatusCleared()
}

// ActivityCard is one rendered roster entry.
type ActivityCard struct {
	Name         string
	Description  string
	Schedule     string
	SpotsLeft    int
	Participants []string
}

// RosterView is the renderable snapshot of the roster state: the cards, the
// signup selector options, and the current inline notice. The page template
// is a pure projection of this value.
type RosterView struct {
	Cards      []ActivityCard
	Options    []string
	LoadFailed bool
	Status     *models.Notice
}

// RosterController owns the roster state. Every mutation funnels back
// through Load, which rebuilds the view from a fresh server fetch; nothing
// is ever patched incrementally.
type RosterController struct {
	svc         services.ActivityServiceInterface
	broadcaster Broadcaster

	mu         sync.Mutex
	cards      []ActivityCard
	options    []string
	loadFailed bool
	status     *models.Notice

	statusTimer *time.Timer
	statusGen   uint64

	loadSeq uint64
}

// NewRosterController creates a controller backed by the given service.
func NewRosterController(svc services.ActivityServiceInterface, broadcaster Broadcaster) *RosterController {
	return &RosterController{svc: svc, broadcaster: broadcaster}
}

// ----------------------- roster loader -----------------------

// Load fetches the activity collection and rebuilds the view from scratch.
// Safe to call repeatedly; overlapping calls race freely, but a load that is
// no longer the latest issued discards its result so a slow response can
// never overwrite a newer one.
func (rc *RosterController) Load(ctx context.Context) {
	seq := atomic.AddUint64(&rc.loadSeq, 1)
	start := time.Now()

	collection, err := rc.svc.GetActivities(ctx)

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if seq != atomic.LoadUint64(&rc.loadSeq) {
		logger.Debug.Printf("[Load] Discarding stale load result (seq=%d)", seq)
		return
	}

	if err != nil {
		logger.Error.Printf("[Load] Failed to fetch activities: %v", err)
		services.PublishRosterLoad(float64(time.Since(start).Milliseconds()), "failure")
		// the list area shows the failure notice; selector options from the
		// last good load stay as they were
		rc.loadFailed = true
		rc.cards = nil
		return
	}
	services.PublishRosterLoad(float64(time.Since(start).Milliseconds()), "success")

	cards := make([]ActivityCard, 0, len(collection))
	options := make([]string, 0, len(collection))
	for _, entry := range collection {
		cards = append(cards, buildCard(entry.Name, entry.Activity))
		options = append(options, entry.Name)
	}
	rc.cards = cards
	rc.options = options
	rc.loadFailed = false
}

// buildCard projects one activity into its rendered form. The participant
// list is copied so later fetches cannot mutate an already-rendered card.
func buildCard(name string, activity models.Activity) ActivityCard {
	return ActivityCard{
		Name:         name,
		Description:  activity.Description,
		Schedule:     activity.Schedule,
		SpotsLeft:    activity.SpotsLeft(),
		Participants: append([]string(nil), activity.Participants...),
	}
}

// View returns a snapshot of the current roster state.
func (rc *RosterController) View() RosterView {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	view := RosterView{
		Cards:      append([]ActivityCard(nil), rc.cards...),
		Options:    append([]string(nil), rc.options...),
		LoadFailed: rc.loadFailed,
	}
	if rc.status != nil {
		status := *rc.status
		view.Status = &status
	}
	return view
}

// ----------------------- enrollment submitter -----------------------

// Signup enrolls email into the chosen activity and reports the outcome as
// an inline notice. Only a confirmed success triggers a roster reload.
func (rc *RosterController) Signup(ctx context.Context, email, activity string) models.Notice {
	message, err := rc.svc.Signup(ctx, activity, email)

	var notice models.Notice
	var apiErr *services.APIError
	switch {
	case err == nil:
		notice = models.Notice{Text: message, Kind: models.NoticeSuccess, Channel: models.ChannelInline}
		services.PublishSignupOutcome("success")
	case errors.As(err, &apiErr):
		detail := apiErr.Detail
		if detail == "" {
			detail = genericDetailText
		}
		notice = models.Notice{Text: detail, Kind: models.NoticeError, Channel: models.ChannelInline}
		services.PublishSignupOutcome("rejected")
	default:
		logger.Error.Printf("[Signup] Request failed for %s / %s: %v", activity, email, err)
		notice = models.Notice{Text: signupFailedText, Kind: models.NoticeError, Channel: models.ChannelInline}
		services.PublishSignupOutcome("error")
	}

	rc.showStatus(notice)
	if notice.Kind == models.NoticeSuccess {
		rc.Load(ctx)
		rc.broadcaster.RosterUpdated()
	}
	return notice
}

// ----------------------- participant remover -----------------------

// Unregister removes email from the named activity. Success reloads the
// roster silently; the visible update is the only feedback. Failures come
// back as a modal notice for the caller to surface.
func (rc *RosterController) Unregister(ctx context.Context, activity, email string) *models.Notice {
	err := rc.svc.Unregister(ctx, activity, email)

	var apiErr *services.APIError
	switch {
	case err == nil:
		services.PublishUnregisterOutcome("success")
		rc.Load(ctx)
		rc.broadcaster.RosterUpdated()
		return nil
	case errors.As(err, &apiErr):
		detail := apiErr.Detail
		if detail == "" {
			detail = genericDetailText
		}
		services.PublishUnregisterOutcome("rejected")
		return &models.Notice{Text: detail, Kind: models.NoticeError, Channel: models.ChannelModal}
	default:
		logger.Error.Printf("[Unregister] Request failed for %s / %s: %v", activity, email, err)
		services.PublishUnregisterOutcome("error")
		return &models.Notice{Text: unregisterFailedText, Kind: models.NoticeError, Channel: models.ChannelModal}
	}
}

// ----------------------- status banner -----------------------

// showStatus replaces the current inline notice and re-arms the auto-hide
// timer. The previous timer is cancelled first so an old timeout can never
// hide a newer message early; the generation check covers a timer that has
// already fired.
func (rc *RosterController) showStatus(notice models.Notice) {
	rc.mu.Lock()
	if rc.statusTimer != nil {
		rc.statusTimer.Stop()
	}
	rc.status = &notice
	rc.statusGen++
	gen := rc.statusGen
	rc.statusTimer = time.AfterFunc(statusVisibleFor, func() {
		rc.clearStatus(gen)
	})
	rc.mu.Unlock()

	rc.broadcaster.StatusChanged(notice)
}

func (rc *RosterController) clearStatus(gen uint64) {
	rc.mu.Lock()
	if gen != rc.statusGen {
		rc.mu.Unlock()
		return
	}
	rc.status = nil
	rc.statusTimer = nil
	rc.mu.Unlock()

	rc.broadcaster.StatusCleared()
}
