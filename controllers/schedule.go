package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/alipiodental/clinic-server/db"
	"github.com/alipiodental/clinic-server/models"
	"github.com/alipiodental/clinic-server/redis"
	"github.com/alipiodental/clinic-server/schedule"
	"github.com/alipiodental/clinic-server/utils"
)

type scheduleRangeRequest struct {
	Name      string                  `json:"name" validate:"required"`
	StartDate string                  `json:"startDate" validate:"required"`
	EndDate   string                  `json:"endDate" validate:"required"`
	Config    schedule.WeeklyTemplate `json:"config" validate:"required"`
	Priority  int                     `json:"priority"`
}

// parseDate accepts both plain dates and full ISO-8601 timestamps, since the
// dashboard historically sent either. Only the calendar date is kept.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return schedule.DateOnly(t), nil
}

func (r *scheduleRangeRequest) toModel() (*models.ScheduleRange, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return nil, &models.ValidationError{Field: "startDate", Reason: "is not a date"}
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return nil, &models.ValidationError{Field: "endDate", Reason: "is not a date"}
	}
	return &models.ScheduleRange{
		Name:      r.Name,
		StartDate: start,
		EndDate:   end,
		Config:    models.TemplateConfig(r.Config),
		Priority:  r.Priority,
	}, nil
}

// loadScheduleRanges reads every schedule range through the cache, falling
// back to the database and repopulating on a miss.
func loadScheduleRanges() ([]models.ScheduleRange, error) {
	if cached, ok := redis.GetCachedSchedules(); ok {
		return cached, nil
	}
	var ranges []models.ScheduleRange
	if err := db.DB.Order("priority desc").Find(&ranges).Error; err != nil {
		return nil, err
	}
	redis.SetCachedSchedules(ranges)
	return ranges, nil
}

// GetAllSchedules lists every schedule range, highest priority first.
func GetAllSchedules(c *fiber.Ctx) error {
	ranges, err := loadScheduleRanges()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch schedules",
			Error:   err.Error(),
		})
	}
	return c.JSON(ranges)
}

// GetSchedule returns a single schedule range by ID.
func GetSchedule(c *fiber.Ctx) error {
	var sched models.ScheduleRange
	if err := db.DB.First(&sched, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Schedule not found",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch schedule",
			Error:   err.Error(),
		})
	}
	return c.JSON(sched)
}

func parseScheduleBody(c *fiber.Ctx) (*models.ScheduleRange, error) {
	var req scheduleRangeRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, &models.ValidationError{Field: "body", Reason: err.Error()}
	}
	if err := utils.Validate(req); err != nil {
		return nil, &models.ValidationError{Field: "body", Reason: utils.FormatValidationError(err)}
	}
	sched, err := req.toModel()
	if err != nil {
		return nil, err
	}
	if err := sched.Validate(); err != nil {
		return nil, err
	}
	return sched, nil
}

// CreateSchedule adds a new schedule range after validating it. Overlapping
// spans are allowed; the resolver sorts overlaps out by priority at lookup.
func CreateSchedule(c *fiber.Ctx) error {
	sched, err := parseScheduleBody(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid schedule",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Create(sched).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create schedule",
			Error:   err.Error(),
		})
	}
	redis.InvalidateSchedules()
	return c.Status(fiber.StatusCreated).JSON(sched)
}

// UpdateSchedule replaces a schedule range wholesale. Partial patches are not
// supported: the dashboard always submits the full range.
func UpdateSchedule(c *fiber.Ctx) error {
	var existing models.ScheduleRange
	if err := db.DB.First(&existing, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Schedule not found",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch schedule",
			Error:   err.Error(),
		})
	}

	sched, err := parseScheduleBody(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid schedule",
			Error:   err.Error(),
		})
	}

	existing.Name = sched.Name
	existing.StartDate = sched.StartDate
	existing.EndDate = sched.EndDate
	existing.Config = sched.Config
	existing.Priority = sched.Priority
	if err := db.DB.Save(&existing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update schedule",
			Error:   err.Error(),
		})
	}
	redis.InvalidateSchedules()
	return c.JSON(existing)
}

// DeleteSchedule removes a schedule range by ID.
func DeleteSchedule(c *fiber.Ctx) error {
	var sched models.ScheduleRange
	if err := db.DB.First(&sched, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Schedule not found",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch schedule",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Delete(&sched).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete schedule",
			Error:   err.Error(),
		})
	}
	redis.InvalidateSchedules()
	return c.SendStatus(fiber.StatusNoContent)
}

// GetScheduleConflicts reports overlapping schedule ranges so administrators
// can spot spans that only the tie-break keeps deterministic.
func GetScheduleConflicts(c *fiber.Ctx) error {
	rows, err := loadScheduleRanges()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch schedules",
			Error:   err.Error(),
		})
	}
	ranges := make([]schedule.Range, 0, len(rows))
	for i := range rows {
		ranges = append(ranges, rows[i].ToRange())
	}
	conflicts := schedule.Conflicts(ranges)
	return c.JSON(fiber.Map{
		"conflicts": conflicts,
		"count":     len(conflicts),
	})
}
