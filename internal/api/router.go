package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gympoint/dashboard-service/internal/api/auth"
	"github.com/gympoint/dashboard-service/internal/api/dashboard"
	"github.com/gympoint/dashboard-service/internal/config"
	"github.com/gympoint/dashboard-service/internal/middleware"
	dashboardService "github.com/gympoint/dashboard-service/internal/service/dashboard"
	"github.com/gympoint/dashboard-service/internal/store"
	storeBookings "github.com/gympoint/dashboard-service/internal/store/bookings"
	storeOccurrences "github.com/gympoint/dashboard-service/internal/store/occurrences"
	storeUsers "github.com/gympoint/dashboard-service/internal/store/users"
)

// RegisterRoutes wires all HTTP routes.
func RegisterRoutes(r *gin.Engine, log *zap.Logger, cfg config.Config, db *store.DB) {
	r.Use(middleware.MetricsMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "GymPoint Dashboard",
			"description": "Daily operational metrics and recent booking activity for the GymPoint facility-booking app.",
			"version":     "1.0.0",
			"endpoints":   []string{"/v1/health", "/v1/auth/login", "/v1/dashboard"},
		})
	})
	r.GET("/v1/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	r.Use(middleware.RedisRateLimit(rdb, 50, 100))

	bookingsRepo := storeBookings.NewBookingsRepository(db, log)
	occurrencesRepo := storeOccurrences.NewOccurrencesRepository(db, log)
	usersRepo := storeUsers.NewUsersRepository(db, log)

	dashboardSvc := dashboardService.NewService(log, bookingsRepo, occurrencesRepo, usersRepo, cfg.MaxCapacity, cfg.RecentActivityLimit)

	auth.NewAuthHandler(log, usersRepo, cfg.JWTSigningSecret).Register(r)
	dashboard.NewDashboardHandler(log, dashboardSvc, cfg.JWTSigningSecret).Register(r)
}
