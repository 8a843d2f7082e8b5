package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"campground/internal/auth"
	"campground/internal/customers"
	"campground/internal/dashboard"
	"campground/internal/reservations"
	"campground/internal/settings"
	"campground/internal/shared/config"
	"campground/internal/shared/database"
	"campground/internal/shared/middleware"
	"campground/internal/spots"
	"campground/pkg/cache"
)

// Router holds all route dependencies
type Router struct {
	config *config.Config
	db     *database.DB
	events reservations.EventProducer

	cacheService cache.Service
	authService  auth.Service
	spotService  spots.Service
}

// NewRouter creates a new router instance. events may be nil when no broker
// is configured.
func NewRouter(cfg *config.Config, db *database.DB, events reservations.EventProducer) *Router {
	return &Router{
		config: cfg,
		db:     db,
		events: events,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	r.cacheService = cache.NewService(r.db.GetRedisClient())

	api := engine.Group(r.config.GetAPIBasePath())

	// Everything under the admin prefix except login requires a valid token.
	r.setupAuthRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(r.authService))
	{
		r.setupSpotRoutes(protected)
		r.setupCustomerRoutes(protected)
		r.setupReservationRoutes(protected)
		r.setupDashboardRoutes(protected)
		r.setupSettingsRoutes(protected)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "campground-admin",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "campground-admin",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func (r *Router) setupAuthRoutes(api *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	r.authService = auth.NewService(authRepo, r.config)
	authController := auth.NewController(r.authService)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(r.authService))

	auth.SetupAuthRoutes(api, protected, authController)
}

func (r *Router) setupSpotRoutes(rg *gin.RouterGroup) {
	spotRepo := spots.NewRepository(r.db.GetPostgreSQL())
	r.spotService = spots.NewService(spotRepo, r.cacheService, r.config.Redis.SpotListTTL)
	spotController := spots.NewController(r.spotService)

	spots.SetupSpotRoutes(rg, spotController)
}

func (r *Router) setupCustomerRoutes(rg *gin.RouterGroup) {
	customerRepo := customers.NewRepository(r.db.GetPostgreSQL())
	customerService := customers.NewService(customerRepo)
	customerController := customers.NewController(customerService)

	customers.SetupCustomerRoutes(rg, customerController)
}

func (r *Router) setupReservationRoutes(rg *gin.RouterGroup) {
	reservationRepo := reservations.NewRepository(r.db.GetPostgreSQL())
	spotRepo := spots.NewRepository(r.db.GetPostgreSQL())
	customerRepo := customers.NewRepository(r.db.GetPostgreSQL())

	reservationService := reservations.NewService(reservationRepo, spotRepo, customerRepo, r.events)
	reservationController := reservations.NewController(reservationService)

	reservations.SetupReservationRoutes(rg, reservationController)
}

func (r *Router) setupDashboardRoutes(rg *gin.RouterGroup) {
	dashboardRepo := dashboard.NewRepository(r.db.GetPostgreSQL())
	dashboardService := dashboard.NewService(dashboardRepo, r.cacheService, r.config.Redis.DashboardTTL)
	dashboardController := dashboard.NewController(dashboardService)

	dashboard.SetupDashboardRoutes(rg, dashboardController)
}

func (r *Router) setupSettingsRoutes(rg *gin.RouterGroup) {
	settingsRepo := settings.NewRepository(r.db.GetPostgreSQL())
	settingsService := settings.NewService(settingsRepo)
	settingsController := settings.NewController(settingsService)

	settings.SetupSettingsRoutes(rg, settingsController)
}
