// file: controllers/helpers_test.go
package controllers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// setupTestRouter creates a new Gin engine with session middleware and
// minimal HTML templates.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	tmpDir := t.TempDir()
	if err := createDummyTemplates(tmpDir); err != nil {
		t.Fatalf("Failed to create dummy templates: %v", err)
	}
	router.LoadHTMLGlob(filepath.Join(tmpDir, "*.html"))
	return router
}

// createDummyTemplates writes a minimal roster template exposing the fields
// the handler tests assert on.
func createDummyTemplates(dir string) error {
	templates := map[string]string{
		"roster.html": `<html><body>
{{if .View.LoadFailed}}<p class="failure">Failed to load activities. Please try again later.</p>{{end}}
{{range .View.Cards}}<div class="card">{{.Name}}|{{.SpotsLeft}}</div>{{end}}
{{range .View.Options}}<option>{{.}}</option>{{end}}
{{if .View.Status}}<div id="message" class="{{.View.Status.Kind}}">{{.View.Status.Text}}</div>{{end}}
{{if .ModalText}}<script>alert({{.ModalText}});</script>{{end}}
email={{.FormEmail}};activity={{.FormActivity}}
</body></html>`,
	}

	for name, content := range templates {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

// sessionCookie extracts the test session cookie from a recorded response.
func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "testsession" {
			return c
		}
	}
	return nil
}
