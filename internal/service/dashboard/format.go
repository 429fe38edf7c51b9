package dashboard

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gympoint/dashboard-service/internal/store/bookings"
)

// FormatSessionDate renders a YYYY-MM-DD day key as "January 2, 2006".
// Empty or unparseable input renders as the empty string.
func FormatSessionDate(day string) string {
	if day == "" {
		return ""
	}
	t, err := time.Parse(dayKeyLayout, day)
	if err != nil {
		return ""
	}
	return t.Format("January 2, 2006")
}

// FormatTimeRange renders two 24-hour HH:MM times as a 12-hour range, e.g.
// "9:00 AM - 10:30 AM". Either side empty or unparseable renders as the
// empty string.
func FormatTimeRange(start, end string) string {
	if start == "" || end == "" {
		return ""
	}
	s, ok := to12Hour(start)
	if !ok {
		return ""
	}
	e, ok := to12Hour(end)
	if !ok {
		return ""
	}
	return s + " - " + e
}

// to12Hour accepts HH:MM with an optional seconds suffix, which is how
// Postgres renders time columns as text.
func to12Hour(t string) (string, bool) {
	parts := strings.Split(t, ":")
	if len(parts) < 2 {
		return "", false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", false
	}
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, minute, ampm), true
}

// StatusLabel maps a stored booking status to its display label. Unknown
// statuses are title-cased and passed through.
func StatusLabel(status string) string {
	switch status {
	case "":
		return ""
	case bookings.StatusConfirmed:
		return "Confirmed"
	case bookings.StatusCancelledByUser:
		return "Cancelled by User"
	case bookings.StatusCancelledByAdmin:
		return "Cancelled by Admin"
	}
	r := []rune(status)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
