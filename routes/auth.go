package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alipiodental/clinic-server/controllers"
)

// SetupAuthRoutes configures authentication routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
}
