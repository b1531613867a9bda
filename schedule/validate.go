package schedule

import (
	"fmt"
	"time"
)

// ValidationError describes a schedule range or template rejected before
// persistence. No partial writes ever happen on validation failure.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid schedule: %s %s", e.Field, e.Reason)
}

// ValidateRange checks a range before it is written: the date span must not be
// inverted, priority must be non-negative, and the embedded template must be
// well formed.
func ValidateRange(r Range) error {
	if r.Name == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return &ValidationError{Field: "dates", Reason: "start and end are required"}
	}
	if dateKey(r.EndDate) < dateKey(r.StartDate) {
		return &ValidationError{Field: "end_date", Reason: "is before start_date"}
	}
	if r.Priority < 0 {
		return &ValidationError{Field: "priority", Reason: "must not be negative"}
	}
	return ValidateTemplate(r.Template)
}

// ValidateTemplate checks that all seven weekdays are present and that every
// open day has parseable times with open strictly before close. A template
// with every day inactive is valid and simply means fully closed.
func ValidateTemplate(t WeeklyTemplate) error {
	for _, day := range Weekdays {
		hours, ok := t[day]
		if !ok {
			return &ValidationError{Field: day, Reason: "is missing from template"}
		}
		if !hours.Active {
			continue
		}
		openAt, err := clockMinutes(hours.Open)
		if err != nil {
			return &ValidationError{Field: day, Reason: fmt.Sprintf("open time %q is not HH:MM", hours.Open)}
		}
		closeAt, err := clockMinutes(hours.Close)
		if err != nil {
			return &ValidationError{Field: day, Reason: fmt.Sprintf("close time %q is not HH:MM", hours.Close)}
		}
		if openAt >= closeAt {
			return &ValidationError{Field: day, Reason: "open time must be before close time"}
		}
	}
	return nil
}

// clockMinutes parses a 24h "HH:MM" string into minutes since midnight.
func clockMinutes(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
