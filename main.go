package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/alipiodental/clinic-server/cron"
	"github.com/alipiodental/clinic-server/db"
	"github.com/alipiodental/clinic-server/redis"
	"github.com/alipiodental/clinic-server/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	db.Migrate()
	redis.InitRedis()
	redis.SubscribeScheduleChanges()
	cron.StartCronJobs()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Clinic server up")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupScheduleRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
