package schedule

import "time"

// DayHours holds the opening hours for a single weekday.
// Times are 24h "HH:MM" strings; Active false means closed all day.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Active bool   `json:"active"`
}

// WeeklyTemplate maps weekday names ("Monday".."Sunday") to their hours.
// It is the typed form of the config blob stored on a clinic schedule.
type WeeklyTemplate map[string]DayHours

// Weekdays lists the seven required template keys, Monday first.
var Weekdays = []string{
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
	time.Sunday.String(),
}

// DefaultWeekly returns the clinic's built-in operating hours, used whenever
// no schedule range covers a date: weekdays 9-5, Saturday mornings, Sunday closed.
func DefaultWeekly() WeeklyTemplate {
	return WeeklyTemplate{
		"Monday":    {Open: "09:00", Close: "17:00", Active: true},
		"Tuesday":   {Open: "09:00", Close: "17:00", Active: true},
		"Wednesday": {Open: "09:00", Close: "17:00", Active: true},
		"Thursday":  {Open: "09:00", Close: "17:00", Active: true},
		"Friday":    {Open: "09:00", Close: "17:00", Active: true},
		"Saturday":  {Open: "09:00", Close: "12:00", Active: true},
		"Sunday":    {Open: "00:00", Close: "00:00", Active: false},
	}
}

// DayFor returns the template entry for t's weekday. A missing entry is
// treated as a closed day.
func (w WeeklyTemplate) DayFor(t time.Time) DayHours {
	return w[t.Weekday().String()]
}
