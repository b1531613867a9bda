package db

import (
	"log"

	"github.com/alipiodental/clinic-server/models"
)

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Appointment{},
		&models.ScheduleRange{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	log.Println("Migrations applied successfully")
}
