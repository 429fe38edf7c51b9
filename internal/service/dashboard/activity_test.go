package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gympoint/dashboard-service/internal/store/bookings"
	"github.com/gympoint/dashboard-service/internal/store/users"
)

func testBooking(id, userID string, createdAt time.Time) *bookings.Booking {
	return &bookings.Booking{
		ID:               id,
		UserID:           userID,
		Status:           bookings.StatusConfirmed,
		SessionDate:      "2025-06-15",
		SessionStartTime: "09:00",
		SessionEndTime:   "10:30",
		CreatedAt:        createdAt,
	}
}

func TestRecentActivityJoinsIdentities(t *testing.T) {
	base := time.Date(2025, time.June, 15, 8, 0, 0, 0, time.UTC)
	// five bookings across three users, newest first
	recent := []*bookings.Booking{
		testBooking("b1", "u1", base.Add(5*time.Minute)),
		testBooking("b2", "u2", base.Add(4*time.Minute)),
		testBooking("b3", "u1", base.Add(3*time.Minute)),
		testBooking("b4", "u3", base.Add(2*time.Minute)),
		testBooking("b5", "u2", base.Add(1*time.Minute)),
	}
	b := &fakeBookings{recent: recent}
	// identity rows exist for only two of the three users
	u := &fakeIdentities{users: []*users.User{
		{ID: "u1", FirstName: "Ana", LastName: "Reyes"},
		{ID: "u2", FirstName: "Ben", LastName: "Cruz"},
	}}

	feed, err := newTestService(b, &fakeOccupancy{}, u).RecentActivity(context.Background())
	require.NoError(t, err)
	require.Len(t, feed.Items, 5)
	assert.False(t, feed.Degraded)

	// original fetch order preserved
	for i, want := range []string{"b1", "b2", "b3", "b4", "b5"} {
		assert.Equal(t, want, feed.Items[i].Booking.ID)
	}

	require.NotNil(t, feed.Items[0].User)
	assert.Equal(t, "Ana", feed.Items[0].User.FirstName)
	require.NotNil(t, feed.Items[1].User)
	require.NotNil(t, feed.Items[2].User)
	assert.Nil(t, feed.Items[3].User, "missing identity never drops the booking")
	require.NotNil(t, feed.Items[4].User)

	assert.Equal(t, "June 15, 2025", feed.Items[0].SessionDateDisplay)
	assert.Equal(t, "9:00 AM - 10:30 AM", feed.Items[0].SessionTimeDisplay)
	assert.Equal(t, "Confirmed", feed.Items[0].StatusLabel)

	assert.Equal(t, 1, u.calls, "identities resolved in one batched lookup")
}

func TestRecentActivityDegradesWhenIdentityLookupFails(t *testing.T) {
	base := time.Date(2025, time.June, 15, 8, 0, 0, 0, time.UTC)
	recent := []*bookings.Booking{
		testBooking("b1", "u1", base.Add(2*time.Minute)),
		testBooking("b2", "u2", base.Add(1*time.Minute)),
	}
	b := &fakeBookings{recent: recent}
	u := &fakeIdentities{err: errors.New("users table gone")}

	feed, err := newTestService(b, &fakeOccupancy{}, u).RecentActivity(context.Background())
	require.NoError(t, err, "identity failure must not fail the feed")
	assert.True(t, feed.Degraded)
	require.Len(t, feed.Items, 2)
	for _, item := range feed.Items {
		assert.Nil(t, item.User)
	}
}

func TestRecentActivityEmptyFeed(t *testing.T) {
	b := &fakeBookings{}

	feed, err := newTestService(b, &fakeOccupancy{}, &fakeIdentities{}).RecentActivity(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, feed.Items)
	assert.Empty(t, feed.Items)
	assert.False(t, feed.Degraded)
}

func TestRecentActivityHardFailsOnPrimaryFetch(t *testing.T) {
	b := &fakeBookings{recentErr: errors.New("connection reset")}

	_, err := newTestService(b, &fakeOccupancy{}, &fakeIdentities{}).RecentActivity(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
}
