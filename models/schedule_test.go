package models

import (
	"testing"
	"time"

	"github.com/alipiodental/clinic-server/schedule"
)

func holidayRow() *ScheduleRange {
	return &ScheduleRange{
		Name:      "Holiday Week",
		StartDate: time.Date(2025, time.December, 24, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		Config:    TemplateConfig(schedule.DefaultWeekly()),
		Priority:  10,
	}
}

func TestScheduleRangeValidate(t *testing.T) {
	row := holidayRow()
	if err := row.Validate(); err != nil {
		t.Fatalf("valid row rejected: %v", err)
	}

	row.EndDate = row.StartDate.AddDate(0, 0, -1)
	if err := row.Validate(); err == nil {
		t.Fatal("inverted span accepted")
	}

	row = holidayRow()
	row.Priority = -5
	if err := row.Validate(); err == nil {
		t.Fatal("negative priority accepted")
	}
}

func TestTemplateConfigScanHandlesTextAndBytes(t *testing.T) {
	raw := `{"Monday":{"open":"09:00","close":"17:00","active":true},"Tuesday":{"open":"09:00","close":"17:00","active":true},"Wednesday":{"open":"09:00","close":"17:00","active":true},"Thursday":{"open":"09:00","close":"17:00","active":true},"Friday":{"open":"09:00","close":"17:00","active":true},"Saturday":{"open":"09:00","close":"12:00","active":true},"Sunday":{"open":"00:00","close":"00:00","active":false}}`

	for name, value := range map[string]interface{}{"string": raw, "bytes": []byte(raw)} {
		var cfg TemplateConfig
		if err := cfg.Scan(value); err != nil {
			t.Fatalf("%s: scan failed: %v", name, err)
		}
		if got := cfg["Saturday"]; got.Close != "12:00" || !got.Active {
			t.Errorf("%s: Saturday = %+v", name, got)
		}
	}

	var cfg TemplateConfig
	if err := cfg.Scan(42); err == nil {
		t.Fatal("scan of int should fail")
	}
}

func TestScheduleRangeToRange(t *testing.T) {
	row := holidayRow()
	row.ID = 7
	row.CreatedAt = time.Date(2025, time.November, 1, 12, 0, 0, 0, time.UTC)

	r := row.ToRange()
	if r.Name != row.Name || r.Priority != row.Priority || r.ID != row.ID {
		t.Fatalf("resolver range lost fields: %+v", r)
	}
	if !r.CreatedAt.Equal(row.CreatedAt) {
		t.Fatalf("creation time not carried over, tie-break would be unstable")
	}
	if !r.Contains(time.Date(2025, time.December, 28, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("converted range should cover a date inside the span")
	}
}
