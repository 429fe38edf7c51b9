package bookings

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/gympoint/dashboard-service/internal/store"
)

// Booking statuses as stored. Unrecognized values pass through untouched.
const (
	StatusPending          = "pending"
	StatusConfirmed        = "confirmed"
	StatusWaitlisted       = "waitlisted"
	StatusCancelledByUser  = "cancelled_by_user"
	StatusCancelledByAdmin = "cancelled_by_admin"
)

// Booking is one row of the bookings table. Rows are read-only to this
// service; the booking lifecycle is owned by the mobile app backend.
type Booking struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Status           string    `json:"status"`
	SessionDate      string    `json:"session_date"`
	SessionStartTime string    `json:"session_start_time"`
	SessionEndTime   string    `json:"session_end_time"`
	TicketID         string    `json:"ticket_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type BookingsRepository struct {
	db  *store.DB
	log *zap.Logger
}

func NewBookingsRepository(db *store.DB, log *zap.Logger) *BookingsRepository {
	return &BookingsRepository{db: db, log: log}
}

// CountForDay counts all bookings with a session on the given day, any status.
func (r *BookingsRepository) CountForDay(ctx context.Context, day string) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE session_date = $1`

	var count int
	if err := r.db.Pool.QueryRow(ctx, query, day).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// CountForDayWithStatus counts bookings with a session on the given day in the
// given status. Counts rows, not distinct users: a user with two confirmed
// sessions that day contributes two.
func (r *BookingsRepository) CountForDayWithStatus(ctx context.Context, day, status string) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE session_date = $1 AND status = $2`

	var count int
	if err := r.db.Pool.QueryRow(ctx, query, day, status).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Recent returns the newest bookings by creation time. Ties fall back to the
// store's natural order.
func (r *BookingsRepository) Recent(ctx context.Context, limit int) ([]*Booking, error) {
	query := `
		SELECT id, user_id, status,
		       session_date::text, session_start_time::text, session_end_time::text,
		       COALESCE(ticket_id, ''), created_at
		FROM bookings
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Booking
	for rows.Next() {
		b := &Booking{}
		err := rows.Scan(
			&b.ID, &b.UserID, &b.Status,
			&b.SessionDate, &b.SessionStartTime, &b.SessionEndTime,
			&b.TicketID, &b.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
