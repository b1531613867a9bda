package schedule

import (
	"errors"
	"testing"
	"time"
)

func validRange() Range {
	return Range{
		Name:      "Summer Hours",
		StartDate: date(2025, time.June, 1),
		EndDate:   date(2025, time.August, 31),
		Priority:  10,
		Template:  DefaultWeekly(),
	}
}

func TestValidateRangeAccepted(t *testing.T) {
	if err := ValidateRange(validRange()); err != nil {
		t.Fatalf("valid range rejected: %v", err)
	}
}

func TestValidateRangeRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Range)
	}{
		{"missing name", func(r *Range) { r.Name = "" }},
		{"zero dates", func(r *Range) { r.StartDate = time.Time{}; r.EndDate = time.Time{} }},
		{"end before start", func(r *Range) { r.EndDate = r.StartDate.AddDate(0, 0, -1) }},
		{"negative priority", func(r *Range) { r.Priority = -1 }},
		{"missing weekday", func(r *Range) {
			tpl := DefaultWeekly()
			delete(tpl, "Wednesday")
			r.Template = tpl
		}},
		{"open equals close", func(r *Range) {
			tpl := DefaultWeekly()
			tpl["Monday"] = DayHours{Open: "09:00", Close: "09:00", Active: true}
			r.Template = tpl
		}},
		{"open after close", func(r *Range) {
			tpl := DefaultWeekly()
			tpl["Monday"] = DayHours{Open: "17:00", Close: "09:00", Active: true}
			r.Template = tpl
		}},
		{"unparseable time", func(r *Range) {
			tpl := DefaultWeekly()
			tpl["Friday"] = DayHours{Open: "9am", Close: "17:00", Active: true}
			r.Template = tpl
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRange()
			tt.mutate(&r)
			err := ValidateRange(r)
			if err == nil {
				t.Fatal("expected rejection, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
		})
	}
}

func TestValidateRangeSingleDaySpan(t *testing.T) {
	r := validRange()
	r.EndDate = r.StartDate
	if err := ValidateRange(r); err != nil {
		t.Fatalf("single-day span rejected: %v", err)
	}
}

func TestValidateTemplateAllClosedIsValid(t *testing.T) {
	if err := ValidateTemplate(closedWeek()); err != nil {
		t.Fatalf("fully closed template rejected: %v", err)
	}
}

func TestValidateTemplateIgnoresInactiveTimes(t *testing.T) {
	// The default Sunday carries 00:00-00:00 but is inactive; that must pass,
	// matching what the dashboard has always stored.
	tpl := DefaultWeekly()
	tpl["Sunday"] = DayHours{Open: "garbage", Close: "", Active: false}
	if err := ValidateTemplate(tpl); err != nil {
		t.Fatalf("inactive day times should not be validated: %v", err)
	}
}
