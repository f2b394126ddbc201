package main

import (
	"net/http"
	"os"

	"smartystreets-api/internal/handlers"
	"smartystreets-api/internal/services"
	"smartystreets-api/internal/validators"
	"smartystreets-api/pkg/config"
	"smartystreets-api/pkg/logger"
	"smartystreets-api/pkg/metrics"
	"smartystreets-api/pkg/smartystreets"

	"github.com/gin-gonic/gin"
)

// App represents the application structure
type App struct {
	Config         *config.Config
	Router         *gin.Engine
	Client         *smartystreets.Client
	AddressHandler *handlers.AddressHandler
	Server         *http.Server
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeMetrics()
	app.initializeClient()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the SmartyStreets client
func (a *App) initializeClient() {
	client, err := a.Config.NewClient()
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize SmartyStreets client: %v", err)
		os.Exit(1)
	}
	a.Client = client
	logger.GlobalLogger.Printf("SmartyStreets client ready: host=%s, proxy=%s", client.Host(), client.Proxy())
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	addressValidator := validators.NewAddressValidator()
	addressService := services.NewAddressService(a.Client, addressValidator)
	a.AddressHandler = handlers.NewAddressHandler(addressService)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	if a.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}
