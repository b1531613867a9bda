package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/alipiodental/clinic-server/schedule"
)

// TemplateConfig stores a weekly template as a JSON text column while keeping
// it a typed structure everywhere else. Only this boundary ever sees the blob.
type TemplateConfig schedule.WeeklyTemplate

func (c TemplateConfig) Value() (driver.Value, error) {
	return json.Marshal(schedule.WeeklyTemplate(c))
}

func (c *TemplateConfig) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported config column type %T", value)
	}
	return json.Unmarshal(raw, (*schedule.WeeklyTemplate)(c))
}

// ScheduleRange is a dated override of the clinic's default operating hours.
// Rows live in the legacy clinic_schedules table; overlapping spans are
// allowed on write and resolved by priority at lookup time.
type ScheduleRange struct {
	gorm.Model
	Name      string         `json:"name"`
	StartDate time.Time      `json:"startDate" gorm:"column:start_date"`
	EndDate   time.Time      `json:"endDate" gorm:"column:end_date"`
	Config    TemplateConfig `json:"config" gorm:"column:config;type:text"`
	Priority  int            `json:"priority"`
}

func (ScheduleRange) TableName() string {
	return "clinic_schedules"
}

// ToRange converts the stored row into the resolver's input form.
func (s *ScheduleRange) ToRange() schedule.Range {
	return schedule.Range{
		ID:        s.ID,
		Name:      s.Name,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Priority:  s.Priority,
		CreatedAt: s.CreatedAt,
		Template:  schedule.WeeklyTemplate(s.Config),
	}
}

// Validate runs the resolver-side checks against the stored row. Called
// before every create and update so invalid rows never reach the table.
func (s *ScheduleRange) Validate() error {
	return schedule.ValidateRange(s.ToRange())
}
