package dashboard

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gympoint/dashboard-service/internal/middleware"
	dashboardService "github.com/gympoint/dashboard-service/internal/service/dashboard"
)

type DashboardHandler struct {
	log    *zap.Logger
	svc    *dashboardService.Service
	secret string
}

func NewDashboardHandler(log *zap.Logger, svc *dashboardService.Service, secret string) *DashboardHandler {
	return &DashboardHandler{log: log, svc: svc, secret: secret}
}

func (h *DashboardHandler) Register(r *gin.Engine) {
	protected := r.Group("/v1/dashboard")
	protected.Use(middleware.AdminMiddleware(h.secret))
	{
		protected.GET("", h.overview)
	}
}

// overview runs one load cycle and returns the full result, or a single
// error with no partial statistics when a primary read failed.
func (h *DashboardHandler) overview(c *gin.Context) {
	ov, err := h.svc.Load(c.Request.Context())
	if err != nil {
		if errors.Is(err, dashboardService.ErrSourceUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to load dashboard stats"})
			return
		}
		h.log.Error("dashboard overview failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, ov)
}
