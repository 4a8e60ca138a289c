package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"wallet/internal/handler"
	"wallet/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	TripHandler     *handler.TripHandler
	FuelHandler     *handler.FuelHandler
	SettingsHandler *handler.SettingsHandler
	WalletHandler   *handler.WalletHandler
	ReportHandler   *handler.ReportHandler
	RedisClient     *redis.Client
	NewRelicApp     *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Trip routes.
		trips := v1.Group("/trips")
		{
			trips.POST("", deps.TripHandler.CreateTrip)
			trips.GET("", deps.TripHandler.GetAll)
			trips.GET("/:id", deps.TripHandler.GetTrip)
			trips.PUT("/:id", deps.TripHandler.UpdateTrip)
			trips.DELETE("/:id", deps.TripHandler.DeleteTrip)
		}

		// Fuel log routes.
		fuelLogs := v1.Group("/fuel-logs")
		{
			fuelLogs.POST("", deps.FuelHandler.CreateFuelLog)
			fuelLogs.GET("", deps.FuelHandler.GetAll)
			fuelLogs.GET("/:id", deps.FuelHandler.GetFuelLog)
			fuelLogs.PUT("/:id", deps.FuelHandler.UpdateFuelLog)
			fuelLogs.DELETE("/:id", deps.FuelHandler.DeleteFuelLog)
		}

		// Settings routes.
		settings := v1.Group("/settings")
		{
			settings.GET("", deps.SettingsHandler.GetSettings)
			settings.PUT("", deps.SettingsHandler.UpdateSettings)
		}

		// Wallet routes.
		wallet := v1.Group("/wallet")
		{
			wallet.GET("/balance", deps.WalletHandler.GetBalance)
			wallet.GET("/fuel", deps.WalletHandler.GetFuelLevel)
			wallet.GET("/summary", deps.WalletHandler.GetSummary)
		}

		// Report routes.
		reports := v1.Group("/reports")
		{
			reports.GET("", deps.ReportHandler.GetReport)
			reports.GET("/export", deps.ReportHandler.ExportReport)
		}
	}

	return router
}
