package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alipiodental/clinic-server/controllers"
	"github.com/alipiodental/clinic-server/middleware"
)

// SetupScheduleRoutes configures all schedule and availability routes
func SetupScheduleRoutes(app *fiber.App) {
	sched := app.Group("/schedules")
	sched.Get("/", controllers.GetAllSchedules)
	sched.Get("/conflicts", middleware.Protected(), controllers.GetScheduleConflicts)
	sched.Get("/:id", controllers.GetSchedule)
	sched.Post("/", middleware.Protected(), controllers.CreateSchedule)
	sched.Put("/:id", middleware.Protected(), controllers.UpdateSchedule)
	sched.Delete("/:id", middleware.Protected(), controllers.DeleteSchedule)

	app.Get("/availability", controllers.GetAvailability)
}
