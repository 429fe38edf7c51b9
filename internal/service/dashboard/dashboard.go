package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gympoint/dashboard-service/internal/metrics"
	"github.com/gympoint/dashboard-service/internal/store/bookings"
	"github.com/gympoint/dashboard-service/internal/store/occurrences"
	"github.com/gympoint/dashboard-service/internal/store/users"
)

// ErrSourceUnavailable marks a failed primary read. Any of the eight metric
// reads or the recent-bookings fetch failing voids the whole load cycle, so
// the dashboard never shows yesterday's numbers mixed with a half-loaded
// today. Identity enrichment is the one exception, see RecentActivity.
var ErrSourceUnavailable = errors.New("data source unavailable")

// BookingSource is the slice of the bookings repository the dashboard needs.
type BookingSource interface {
	CountForDay(ctx context.Context, day string) (int, error)
	CountForDayWithStatus(ctx context.Context, day, status string) (int, error)
	Recent(ctx context.Context, limit int) ([]*bookings.Booking, error)
}

// OccupancySource reports the occupancy sum for one day.
type OccupancySource interface {
	OccupancyForDay(ctx context.Context, day string) (int, error)
}

// IdentitySource batch-resolves user identities by id.
type IdentitySource interface {
	ListByIDs(ctx context.Context, ids []string) ([]*users.User, error)
}

// Stats are today's counters plus the day-over-day percentage changes.
type Stats struct {
	ActiveUsers            int     `json:"active_users"`
	BookingsToday          int     `json:"bookings_today"`
	CurrentOccupancy       int     `json:"current_occupancy"`
	MaxCapacity            int     `json:"max_capacity"`
	PendingApprovals       int     `json:"pending_approvals"`
	PercentActiveChange    float64 `json:"percent_active_change"`
	PercentBookingsChange  float64 `json:"percent_bookings_change"`
	PercentOccupancyChange float64 `json:"percent_occupancy_change"`
	PercentPendingChange   float64 `json:"percent_pending_change"`
}

// Overview is the single artifact of one load cycle: stats, the recent
// activity feed, and whether identity enrichment was degraded.
type Overview struct {
	Stats          Stats             `json:"stats"`
	RecentBookings []EnrichedBooking `json:"recent_bookings"`
	Degraded       bool              `json:"degraded"`
}

type daySnapshot struct {
	activeUsers      int
	bookings         int
	occupancy        int
	pendingApprovals int
}

type Service struct {
	log         *zap.Logger
	bookings    BookingSource
	occurrences OccupancySource
	users       IdentitySource
	maxCapacity int
	recentLimit int
	now         func() time.Time
}

func NewService(log *zap.Logger, b BookingSource, o OccupancySource, u IdentitySource, maxCapacity, recentLimit int) *Service {
	return &Service{
		log:         log,
		bookings:    b,
		occurrences: o,
		users:       u,
		maxCapacity: maxCapacity,
		recentLimit: recentLimit,
		now:         time.Now,
	}
}

// Load runs one full load cycle. Both day snapshots must resolve completely
// before any delta is computed; a failure anywhere discards everything.
func (s *Service) Load(ctx context.Context) (*Overview, error) {
	start := time.Now()

	today, yesterday := Window(s.now())

	prev, err := s.snapshotFor(ctx, yesterday)
	if err != nil {
		return nil, s.loadFailed(err)
	}
	cur, err := s.snapshotFor(ctx, today)
	if err != nil {
		return nil, s.loadFailed(err)
	}

	feed, err := s.RecentActivity(ctx)
	if err != nil {
		return nil, s.loadFailed(err)
	}

	ov := &Overview{
		Stats: Stats{
			ActiveUsers:            cur.activeUsers,
			BookingsToday:          cur.bookings,
			CurrentOccupancy:       cur.occupancy,
			MaxCapacity:            s.maxCapacity,
			PendingApprovals:       cur.pendingApprovals,
			PercentActiveChange:    PercentChange(cur.activeUsers, prev.activeUsers),
			PercentBookingsChange:  PercentChange(cur.bookings, prev.bookings),
			PercentOccupancyChange: PercentChange(cur.occupancy, prev.occupancy),
			PercentPendingChange:   PercentChange(cur.pendingApprovals, prev.pendingApprovals),
		},
		RecentBookings: feed.Items,
		Degraded:       feed.Degraded,
	}

	metrics.DashboardLoadsTotal.WithLabelValues("ok").Inc()
	metrics.DashboardLoadDuration.Observe(time.Since(start).Seconds())
	return ov, nil
}

func (s *Service) loadFailed(err error) error {
	metrics.DashboardLoadsTotal.WithLabelValues("error").Inc()
	s.log.Error("dashboard load failed", zap.Error(err))
	if errors.Is(err, ErrSourceUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
}

// snapshotFor resolves the four counters for one day. The reads are
// independent and run concurrently; the first failure cancels the rest and
// discards the snapshot.
func (s *Service) snapshotFor(ctx context.Context, day string) (daySnapshot, error) {
	var snap daySnapshot

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.bookings.CountForDayWithStatus(ctx, day, bookings.StatusConfirmed)
		if err != nil {
			return fmt.Errorf("active users for %s: %w", day, err)
		}
		snap.activeUsers = n
		return nil
	})
	g.Go(func() error {
		n, err := s.bookings.CountForDay(ctx, day)
		if err != nil {
			return fmt.Errorf("bookings for %s: %w", day, err)
		}
		snap.bookings = n
		return nil
	})
	g.Go(func() error {
		n, err := s.occurrences.OccupancyForDay(ctx, day)
		if err != nil {
			return fmt.Errorf("occupancy for %s: %w", day, err)
		}
		snap.occupancy = n
		return nil
	})
	g.Go(func() error {
		n, err := s.bookings.CountForDayWithStatus(ctx, day, bookings.StatusPending)
		if err != nil {
			return fmt.Errorf("pending approvals for %s: %w", day, err)
		}
		snap.pendingApprovals = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return daySnapshot{}, err
	}
	return snap, nil
}

var _ BookingSource = (*bookings.BookingsRepository)(nil)
var _ OccupancySource = (*occurrences.OccurrencesRepository)(nil)
var _ IdentitySource = (*users.UsersRepository)(nil)
