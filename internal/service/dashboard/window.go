package dashboard

import "time"

const dayKeyLayout = "2006-01-02"

// Window returns the day keys for today and yesterday in the local calendar.
// Yesterday is computed by decrementing the day-of-month and letting time.Date
// normalize, never by subtracting 24 hours, so a DST transition cannot shift
// the result into the wrong day.
func Window(now time.Time) (today, yesterday string) {
	today = now.Format(dayKeyLayout)
	prev := time.Date(now.Year(), now.Month(), now.Day()-1, 0, 0, 0, 0, now.Location())
	yesterday = prev.Format(dayKeyLayout)
	return today, yesterday
}
