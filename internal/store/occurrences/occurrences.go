package occurrences

import (
	"context"

	"go.uber.org/zap"

	"github.com/gympoint/dashboard-service/internal/store"
)

// Occurrence is one schedulable slot on one day.
type Occurrence struct {
	Date             string `json:"date"`
	BookedSlots      int    `json:"booked_slots"`
	AttendedCount    int    `json:"attended_count"`
	OverrideCapacity int    `json:"override_capacity"`
}

type OccurrencesRepository struct {
	db  *store.DB
	log *zap.Logger
}

func NewOccurrencesRepository(db *store.DB, log *zap.Logger) *OccurrencesRepository {
	return &OccurrencesRepository{db: db, log: log}
}

// OccupancyForDay sums booked_slots + attended_count + override_capacity over
// all occurrences on the given day, with NULL fields treated as zero. The
// three addends overlap (an attendee usually also holds a booked slot), so the
// figure can double-count; the mobile dashboard has always reported it this
// way and downstream consumers expect the same number. Flagged with product,
// do not "fix" here.
func (r *OccurrencesRepository) OccupancyForDay(ctx context.Context, day string) (int, error) {
	query := `
		SELECT COALESCE(SUM(
			COALESCE(booked_slots, 0) + COALESCE(attended_count, 0) + COALESCE(override_capacity, 0)
		), 0)
		FROM session_occurrences
		WHERE date = $1`

	var total int
	if err := r.db.Pool.QueryRow(ctx, query, day).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
