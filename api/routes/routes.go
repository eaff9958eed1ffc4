package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/ArowuTest/blood-donation-backend/internal/config"
	"github.com/ArowuTest/blood-donation-backend/internal/handlers"
	"github.com/ArowuTest/blood-donation-backend/internal/metrics"
	"github.com/ArowuTest/blood-donation-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// HandlerDependencies holds all the handlers and shared infrastructure the router needs
type HandlerDependencies struct {
	CampHandler  *handlers.CampHandler
	DonorHandler *handlers.DonorHandler
	TrustHandler *handlers.TrustHandler

	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	// Ping reports store health for /health
	Ping func(ctx context.Context) error
}

// servedMethods are the methods the API answers; OPTIONS is handled by CORSMiddleware
var servedMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	if deps.Metrics != nil {
		router.Use(middleware.MetricsMiddleware(deps.Metrics))
	}

	methodNotAllowed := func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	}
	router.NoRoute(func(c *gin.Context) {
		// a method the API never serves is rejected whatever the path
		if !servedMethods[c.Request.Method] {
			methodNotAllowed(c)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	router.NoMethod(methodNotAllowed)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		if deps.Ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := deps.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api := router.Group("/api")
	if cfg.WriteGuardEnabled() {
		api.Use(middleware.WriteAuthMiddleware(cfg.JWT.Secret, deps.Logger))
	}
	{
		camps := api.Group("/camps")
		{
			camps.GET("", deps.CampHandler.GetCamps)
			camps.GET("/count", deps.CampHandler.GetCampCount)
			camps.GET("/:id", deps.CampHandler.GetCampByID)
			camps.POST("", deps.CampHandler.CreateCamp)
			camps.PUT("", deps.CampHandler.UpdateCamp)
			camps.PUT("/:id", deps.CampHandler.UpdateCamp)
			camps.DELETE("", deps.CampHandler.DeleteCamp)
			camps.DELETE("/:id", deps.CampHandler.DeleteCamp)
		}

		donors := api.Group("/donors")
		{
			donors.GET("", deps.DonorHandler.GetDonors)
			donors.GET("/count", deps.DonorHandler.GetDonorCount)
			donors.GET("/:id", deps.DonorHandler.GetDonorByID)
			donors.POST("", deps.DonorHandler.RegisterDonor)
			donors.PUT("", deps.DonorHandler.UpdateDonor)
			donors.PUT("/:id", deps.DonorHandler.UpdateDonor)
			donors.DELETE("", deps.DonorHandler.DeleteDonor)
			donors.DELETE("/:id", deps.DonorHandler.DeleteDonor)
		}

		trusts := api.Group("/trusts")
		{
			trusts.GET("", deps.TrustHandler.GetTrusts)
			trusts.GET("/count", deps.TrustHandler.GetTrustCount)
			trusts.GET("/:id", deps.TrustHandler.GetTrustByID)
			trusts.POST("", deps.TrustHandler.RegisterTrust)
			trusts.PUT("", deps.TrustHandler.UpdateTrust)
			trusts.PUT("/:id", deps.TrustHandler.UpdateTrust)
			trusts.DELETE("", deps.TrustHandler.DeleteTrust)
			trusts.DELETE("/:id", deps.TrustHandler.DeleteTrust)
		}
	}

	return router
}
