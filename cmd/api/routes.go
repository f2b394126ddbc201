package main

import (
	"net/http"

	"smartystreets-api/internal/middleware"
	"smartystreets-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupOperationalRoutes()
	a.setupAPIRoutes()
}

// health check and Prometheus metrics endpoint
func (a *App) setupOperationalRoutes() {
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "upstream": a.Client.Host()})
	})
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api/v1")
	if secret := a.Config.JWT.Secret; secret != "" {
		api.Use(middleware.AuthMiddleware(secret))
	} else {
		logger.GlobalLogger.Printf("JWT secret not configured, /api/v1 is unauthenticated")
	}
	{
		api.GET("/street-address", a.AddressHandler.VerifyAddress)
		api.POST("/street-address", a.AddressHandler.VerifyAddresses)
		api.GET("/zipcode", a.AddressHandler.LookupZipcode)
		api.POST("/zipcode", a.AddressHandler.LookupZipcodes)
		api.GET("/suggest", a.AddressHandler.Suggest)
	}
}
