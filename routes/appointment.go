package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alipiodental/clinic-server/controllers"
	"github.com/alipiodental/clinic-server/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments")
	appointment.Get("/", middleware.Protected(), controllers.GetAllAppointments)
	appointment.Get("/:id", middleware.Protected(), controllers.GetAppointment)
	appointment.Post("/", controllers.CreateAppointment)
	appointment.Patch("/:id/status", middleware.Protected(), controllers.UpdateAppointmentStatus)
	appointment.Delete("/:id", middleware.Protected(), controllers.DeleteAppointment)
}
