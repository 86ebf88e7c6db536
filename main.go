// main.go
package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"activities-portal/controllers"
	"activities-portal/logger"
	"activities-portal/middleware"
	"activities-portal/registry"
	"activities-portal/services"
	"activities-portal/websocket"
)

func main() {
	// Pick up a local .env if present; real deployments set the environment.
	if err := godotenv.Load(); err != nil {
		logger.Debug.Println("No .env file loaded; using process environment")
	}
	logger.SetLogLevel(os.Getenv("APP_ENV"))

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(middleware.NoCache)

	// Read configuration from environment variables
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	portalURL := os.Getenv("PORTAL_URL")
	if portalURL == "" {
		portalURL = "http://localhost:" + port
	}
	websocketURL := os.Getenv("WEBSOCKET_URL")
	if websocketURL == "" {
		websocketURL = "ws://localhost:" + port + "/roster-updates"
	}
	controllers.SetConfig(portalURL, websocketURL)

	// Initialize session store
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = "activities-portal-dev-secret"
	}
	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("portalsession", store))

	// Determine the absolute path to the templates directory
	_, b, _, _ := runtime.Caller(0)
	basepath := filepath.Dir(b)
	templatesDir := filepath.Join(basepath, "templates", "*.html")
	router.LoadHTMLGlob(templatesDir)

	// Serve static files under /static
	router.Static("/static", "./static")
	router.GET("/favicon.ico", func(c *gin.Context) {
		c.File("./static/images/favicon.ico")
	})

	// The portal talks to either its own in-process registry (default) or a
	// remote activities API.
	var activityService services.ActivityServiceInterface
	if apiURL := os.Getenv("ACTIVITIES_API_URL"); apiURL != "" {
		logger.Info.Printf("Using remote activities API at %s", apiURL)
		activityService = services.NewHTTPActivityService(apiURL)
	} else {
		seedPath := os.Getenv("ACTIVITIES_SEED")
		if seedPath == "" {
			seedPath = filepath.Join(basepath, "config", "activities.json")
		}
		seed, err := registry.LoadSeed(seedPath)
		if err != nil {
			log.Fatalf("Failed to load activity seed: %v", err)
		}
		reg := registry.NewRegistry(seed)
		registry.RegisterRoutes(router, reg)
		activityService = registry.NewService(reg)
		logger.Info.Printf("Serving in-process activities API with %d activities", len(seed))
	}

	roster := controllers.NewRosterController(activityService, websocket.Hub{})
	pages := controllers.NewPageController(roster)

	router.GET("/", pages.ShowRoster)
	router.POST("/signup", pages.PerformSignup)
	router.POST("/unregister", pages.PerformUnregister)
	router.GET("/qrcode", controllers.GetQRCode)
	router.GET("/health", controllers.Health)
	router.GET("/roster-updates", func(c *gin.Context) {
		websocket.ServeWs(c.Writer, c.Request)
	})

	// Start the WebSocket fan-out
	go websocket.HandleMessages()

	// Start the server
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
