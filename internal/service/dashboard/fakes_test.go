package dashboard

import (
	"context"

	"github.com/gympoint/dashboard-service/internal/store/bookings"
	"github.com/gympoint/dashboard-service/internal/store/users"
)

type fakeBookings struct {
	all       map[string]int
	byStatus  map[string]int
	allErr    map[string]error
	statusErr map[string]error
	recent    []*bookings.Booking
	recentErr error
}

func statusKey(day, status string) string { return day + "|" + status }

func (f *fakeBookings) CountForDay(ctx context.Context, day string) (int, error) {
	if err := f.allErr[day]; err != nil {
		return 0, err
	}
	return f.all[day], nil
}

func (f *fakeBookings) CountForDayWithStatus(ctx context.Context, day, status string) (int, error) {
	if err := f.statusErr[statusKey(day, status)]; err != nil {
		return 0, err
	}
	return f.byStatus[statusKey(day, status)], nil
}

func (f *fakeBookings) Recent(ctx context.Context, limit int) ([]*bookings.Booking, error) {
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

type fakeOccupancy struct {
	byDay map[string]int
	errs  map[string]error
}

func (f *fakeOccupancy) OccupancyForDay(ctx context.Context, day string) (int, error) {
	if err := f.errs[day]; err != nil {
		return 0, err
	}
	return f.byDay[day], nil
}

type fakeIdentities struct {
	users []*users.User
	err   error
	calls int
}

func (f *fakeIdentities) ListByIDs(ctx context.Context, ids []string) ([]*users.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	allowed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		allowed[id] = struct{}{}
	}
	var result []*users.User
	for _, u := range f.users {
		if _, ok := allowed[u.ID]; ok {
			result = append(result, u)
		}
	}
	return result, nil
}
