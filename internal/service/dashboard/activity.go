package dashboard

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gympoint/dashboard-service/internal/metrics"
	"github.com/gympoint/dashboard-service/internal/store/bookings"
	"github.com/gympoint/dashboard-service/internal/store/users"
)

// EnrichedBooking pairs a booking with the identity of its owner, when the
// identity could be resolved, plus the display strings the dashboard renders.
type EnrichedBooking struct {
	Booking            *bookings.Booking `json:"booking"`
	User               *users.User       `json:"user,omitempty"`
	SessionDateDisplay string            `json:"session_date_display"`
	SessionTimeDisplay string            `json:"session_time_display"`
	StatusLabel        string            `json:"status_label"`
}

// ActivityFeed is the recent-bookings feed. Degraded is set when the identity
// lookup failed and the feed was served without user data.
type ActivityFeed struct {
	Items    []EnrichedBooking `json:"items"`
	Degraded bool              `json:"degraded"`
}

// RecentActivity fetches the newest bookings and joins user identities onto
// them client-side. The booking fetch is a hard dependency; the identity
// lookup is best-effort. A broken identity table degrades the feed to bare
// bookings but never takes it down, and a booking whose user has no identity
// row stays in the feed with no user attached.
func (s *Service) RecentActivity(ctx context.Context) (ActivityFeed, error) {
	recent, err := s.bookings.Recent(ctx, s.recentLimit)
	if err != nil {
		return ActivityFeed{}, fmt.Errorf("%w: recent bookings: %v", ErrSourceUnavailable, err)
	}

	feed := ActivityFeed{Items: make([]EnrichedBooking, 0, len(recent))}
	if len(recent) == 0 {
		return feed, nil
	}

	seen := make(map[string]struct{}, len(recent))
	ids := make([]string, 0, len(recent))
	for _, b := range recent {
		if _, ok := seen[b.UserID]; ok {
			continue
		}
		seen[b.UserID] = struct{}{}
		ids = append(ids, b.UserID)
	}

	byID := make(map[string]*users.User, len(ids))
	identities, err := s.users.ListByIDs(ctx, ids)
	if err != nil {
		s.log.Warn("identity lookup failed, serving feed without user data", zap.Error(err))
		metrics.EnrichmentDegradedTotal.Inc()
		feed.Degraded = true
	} else {
		for _, u := range identities {
			byID[u.ID] = u
		}
	}

	for _, b := range recent {
		feed.Items = append(feed.Items, EnrichedBooking{
			Booking:            b,
			User:               byID[b.UserID],
			SessionDateDisplay: FormatSessionDate(b.SessionDate),
			SessionTimeDisplay: FormatTimeRange(b.SessionStartTime, b.SessionEndTime),
			StatusLabel:        StatusLabel(b.Status),
		})
	}

	return feed, nil
}
