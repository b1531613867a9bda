package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/alipiodental/clinic-server/schedule"
	"github.com/alipiodental/clinic-server/utils"
)

// GetAvailability resolves the clinic's operating hours for a calendar date.
// Public endpoint backing the booking page: ?date=YYYY-MM-DD, defaulting to
// today when omitted.
func GetAvailability(c *fiber.Ctx) error {
	date := time.Now()
	if q := c.Query("date"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid date, expected YYYY-MM-DD",
				Error:   err.Error(),
			})
		}
		date = parsed
	}

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

	availability := schedule.Resolve(date, ranges, schedule.DefaultWeekly())
	return c.JSON(fiber.Map{
		"date":         schedule.DateOnly(date).Format("2006-01-02"),
		"weekday":      date.Weekday().String(),
		"availability": availability,
	})
}
