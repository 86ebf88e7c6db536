// Package controllers file: controllers/page_controller.go
package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"activities-portal/logger"
	"activities-portal/models"
	"activities-portal/services"
)

var (
	PortalURL    string
	WebsocketURL string
)

// SetConfig sets global portal and WebSocket URLs
func SetConfig(portalURL, wsURL string) {
	PortalURL = portalURL
	WebsocketURL = wsURL
	logger.Info.Printf("SetConfig: Global config updated: PortalURL=%s, WebsocketURL=%s", portalURL, wsURL)
}

// PageController serves the portal pages on top of the roster controller.
type PageController struct {
	roster *RosterController
}

// NewPageController creates a PageController.
func NewPageController(roster *RosterController) *PageController {
	return &PageController{roster: roster}
}

// Health reports service liveness.
func Health(c *gin.Context) {
	logger.Debug.Println("Health: Health check requested")
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// ShowRoster runs a fresh roster load and renders the portal page from the
// resulting view. One-shot values (modal alert text, sticky form values from
// a rejected signup) are pulled out of the session.
func (p *PageController) ShowRoster(c *gin.Context) {
	p.roster.Load(c.Request.Context())
	view := p.roster.View()

	session := sessions.Default(c)
	modalText, _ := session.Get("modalText").(string)
	formEmail, _ := session.Get("formEmail").(string)
	formActivity, _ := session.Get("formActivity").(string)
	if modalText != "" || formEmail != "" || formActivity != "" {
		session.Delete("modalText")
		session.Delete("formEmail")
		session.Delete("formActivity")
		if err := session.Save(); err != nil {
			logger.Error.Printf("ShowRoster: Error saving session: %v", err)
		}
	}

	logger.Info.Printf("ShowRoster: Rendering %d activities (loadFailed=%v)", len(view.Cards), view.LoadFailed)
	c.HTML(http.StatusOK, "roster.html", gin.H{
		"WebsocketURL": WebsocketURL,
		"View":         view,
		"ModalText":    modalText,
		"FormEmail":    formEmail,
		"FormActivity": formActivity,
	})
}

// PerformSignup handles the signup form post. The outcome notice lives in
// the roster controller; this handler only decides what survives the
// redirect: a rejected signup keeps the submitted form values sticky, a
// successful one clears them.
func (p *PageController) PerformSignup(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	activity := c.PostForm("activity")
	if email == "" || activity == "" {
		// native form validation should have caught this
		logger.Warn.Println("PerformSignup: Missing email or activity in form post")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	notice := p.roster.Signup(c.Request.Context(), email, activity)
	if notice.Kind == models.NoticeError {
		session := sessions.Default(c)
		session.Set("formEmail", email)
		session.Set("formActivity", activity)
		if err := session.Save(); err != nil {
			logger.Error.Printf("PerformSignup: Error saving session: %v", err)
		}
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// PerformUnregister handles a remove-participant post. A failure is carried
// across the redirect as modal alert text; success needs no message, the
// refreshed roster is the feedback.
func (p *PageController) PerformUnregister(c *gin.Context) {
	activity := c.PostForm("activity")
	email := c.PostForm("email")
	if activity == "" || email == "" {
		logger.Warn.Println("PerformUnregister: Missing activity or email in form post")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if notice := p.roster.Unregister(c.Request.Context(), activity, email); notice != nil {
		session := sessions.Default(c)
		session.Set("modalText", notice.Text)
		if err := session.Save(); err != nil {
			logger.Error.Printf("PerformUnregister: Error saving session: %v", err)
		}
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// GetQRCode displays a QR code for the portal URL
func GetQRCode(c *gin.Context) {
	logger.Info.Println("GetQRCode: Generating QR code")

	qrBytes, err := services.GenerateQRCode(300, services.QRCodeEncoder(qrcode.Encode))
	if err != nil {
		logger.Error.Printf("GetQRCode: Error generating QR code: %v", err)
		c.String(http.StatusInternalServerError, "QR generation failed")
		return
	}

	c.Header("Content-Type", "image/png")
	c.Header("Content-Disposition", "inline; filename=\"qrcode.png\"")
	if _, err := c.Writer.Write(qrBytes); err != nil {
		logger.Error.Printf("GetQRCode: Error writing QR code bytes: %v", err)
	}
}
