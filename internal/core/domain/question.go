package domain

import (
	"time"

	"github.com/google/uuid"
)

// Question is a scheduled daily check-in question. ScheduledOn carries
// date-only granularity: the time-of-day portion is ignored for scheduling,
// comparisons happen on calendar days in the deployment timezone.
type Question struct {
	ID          uuid.UUID `json:"id"`
	Text        string    `json:"text"`
	AuthorID    uuid.UUID `json:"author_id"`
	ScheduledOn time.Time `json:"scheduled_on"`
	CreatedAt   time.Time `json:"created_at"`
}

// Day truncates t to its calendar day in loc. All scheduling comparisons go
// through this so a deployment has exactly one notion of "today".
func Day(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DayKey returns a sortable yyyymmdd key for t's calendar date in t's own
// location. Scheduled dates are date-only values, so the date is read as
// stored instead of being shifted through a timezone conversion.
func DayKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
