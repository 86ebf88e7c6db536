// services/qrcode_service.go
package services

import (
	"os"

	"github.com/skip2/go-qrcode"
)

// QRCodeEncoder abstracts qrcode.Encode so tests can inject failures.
type QRCodeEncoder func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error)

// GenerateQRCode creates a QR code PNG pointing at the portal URL, so the
// signup page can be opened by scanning it from a phone.
func GenerateQRCode(size int, encode QRCodeEncoder) ([]byte, error) {
	portalURL := os.Getenv("PORTAL_URL")
	if portalURL == "" {
		portalURL = "http://localhost:8080" // Default for local testing
	}

	png, err := encode(portalURL, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png, nil
}
