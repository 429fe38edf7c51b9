package dashboard_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apiDashboard "github.com/gympoint/dashboard-service/internal/api/dashboard"
	"github.com/gympoint/dashboard-service/internal/middleware"
	"github.com/gympoint/dashboard-service/internal/service/dashboard"
	"github.com/gympoint/dashboard-service/internal/store/bookings"
	"github.com/gympoint/dashboard-service/internal/store/users"
)

const testSecret = "test-secret"

type stubSources struct {
	err    error
	recent []*bookings.Booking
}

func (s *stubSources) CountForDay(ctx context.Context, day string) (int, error) {
	return 4, s.err
}

func (s *stubSources) CountForDayWithStatus(ctx context.Context, day, status string) (int, error) {
	return 2, s.err
}

func (s *stubSources) OccupancyForDay(ctx context.Context, day string) (int, error) {
	return 8, s.err
}

func (s *stubSources) Recent(ctx context.Context, limit int) ([]*bookings.Booking, error) {
	return s.recent, s.err
}

func (s *stubSources) ListByIDs(ctx context.Context, ids []string) ([]*users.User, error) {
	return nil, s.err
}

func newTestRouter(src *stubSources) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := dashboard.NewService(zap.NewNop(), src, src, src, 15, 5)
	apiDashboard.NewDashboardHandler(zap.NewNop(), svc, testSecret).Register(r)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOverviewRequiresAdminToken(t *testing.T) {
	r := newTestRouter(&stubSources{})

	w := doRequest(t, r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	userToken, err := middleware.Issue(testSecret, "u1", false, time.Hour)
	require.NoError(t, err)
	w = doRequest(t, r, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOverviewReturnsStats(t *testing.T) {
	r := newTestRouter(&stubSources{})

	adminToken, err := middleware.Issue(testSecret, "admin-1", true, time.Hour)
	require.NoError(t, err)
	w := doRequest(t, r, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	var ov dashboard.Overview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ov))
	assert.Equal(t, 2, ov.Stats.ActiveUsers)
	assert.Equal(t, 4, ov.Stats.BookingsToday)
	assert.Equal(t, 8, ov.Stats.CurrentOccupancy)
	assert.Equal(t, 15, ov.Stats.MaxCapacity)
	// both days served identical counters, so every delta is flat
	assert.Equal(t, float64(0), ov.Stats.PercentBookingsChange)
}

func TestOverviewMapsSourceFailureTo503(t *testing.T) {
	r := newTestRouter(&stubSources{err: errors.New("db down")})

	adminToken, err := middleware.Issue(testSecret, "admin-1", true, time.Hour)
	require.NoError(t, err)
	w := doRequest(t, r, adminToken)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "failed to load dashboard stats")
}
