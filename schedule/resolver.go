package schedule

import "time"

// DefaultSource is the SourceName reported when no range covers the date
// and the default weekly template decided the outcome.
const DefaultSource = "default"

// Range is a dated override of the default weekly template. Ranges may
// overlap; Resolve picks a winner by priority at lookup time.
type Range struct {
	ID        uint
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Priority  int
	CreatedAt time.Time
	Template  WeeklyTemplate
}

// Contains reports whether the range covers the given date. Both bounds are
// inclusive; only the calendar date matters, so timestamps carrying different
// locations cannot shift a boundary day.
func (r Range) Contains(date time.Time) bool {
	d := dateKey(date)
	return d >= dateKey(r.StartDate) && d <= dateKey(r.EndDate)
}

// DayAvailability is the outcome of resolving a single calendar date.
// Open and Close are empty when IsOpen is false.
type DayAvailability struct {
	IsOpen     bool   `json:"is_open"`
	Open       string `json:"open,omitempty"`
	Close      string `json:"close,omitempty"`
	SourceName string `json:"source"`
}

// Resolve determines whether the clinic is open on the given date and at what
// hours. Ranges covering the date are considered first; among them the highest
// priority wins, with ties broken by the most recently created range, then by
// the lexicographically largest name, then by the largest ID, so the result is
// stable no matter how the input is ordered. With no covering range the
// default template applies.
func Resolve(date time.Time, ranges []Range, defaultTemplate WeeklyTemplate) DayAvailability {
	template := defaultTemplate
	source := DefaultSource

	var winner *Range
	for i := range ranges {
		r := &ranges[i]
		if !r.Contains(date) {
			continue
		}
		if winner == nil || beats(r, winner) {
			winner = r
		}
	}
	if winner != nil {
		template = winner.Template
		source = winner.Name
	}

	day := template.DayFor(date)
	if !day.Active {
		return DayAvailability{IsOpen: false, SourceName: source}
	}
	return DayAvailability{
		IsOpen:     true,
		Open:       day.Open,
		Close:      day.Close,
		SourceName: source,
	}
}

// beats reports whether a should replace b as the current winner. The ID is
// the last key so the ordering is total even for ranges sharing priority,
// creation time and name.
func beats(a, b *Range) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	if a.Name != b.Name {
		return a.Name > b.Name
	}
	return a.ID > b.ID
}

// DateOnly truncates t to midnight in its own location, discarding the
// time-of-day component.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dateKey collapses a timestamp to its calendar date as a comparable number.
// Date comparisons go through this so neither time of day nor location takes
// part in them.
func dateKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}
