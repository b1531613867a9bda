package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/alipiodental/clinic-server/db"
	"github.com/alipiodental/clinic-server/models"
	"github.com/alipiodental/clinic-server/utils"
)

type createAppointmentRequest struct {
	PatientName string `json:"title" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Date        string `json:"date" validate:"required"`
	Notes       string `json:"notes"`
}

type updateStatusRequest struct {
	Status models.AppointmentStatus `json:"status"`
}

// GetAllAppointments returns every appointment, optionally filtered by
// status, sorted by scheduled time.
func GetAllAppointments(c *fiber.Ctx) error {
	query := db.DB.Order(`"date" asc`)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// GetAppointment returns a single appointment by ID.
func GetAppointment(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := db.DB.First(&appointment, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Appointment not found",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointment",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// CreateAppointment books a new appointment request. Public endpoint; every
// booking starts out pending regardless of what the client sends.
func CreateAppointment(c *fiber.Ctx) error {
	var req createAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := utils.Validate(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Validation failed",
			Error:   utils.FormatValidationError(err),
		})
	}
	scheduledAt, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment date",
			Error:   err.Error(),
		})
	}

	appointment := models.Appointment{
		PatientName: req.PatientName,
		Email:       req.Email,
		ScheduledAt: scheduledAt,
		Notes:       req.Notes,
		Status:      models.StatusPending,
	}
	if err := db.DB.Create(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// UpdateAppointmentStatus confirms or cancels a pending appointment, then
// emails the patient. Persistence and notification are deliberately not
// transactional: if the email fails the new status stands and the response
// reports the notification failure alongside it.
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var appointment models.Appointment
	if err := db.DB.First(&appointment, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Appointment not found",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointment",
			Error:   err.Error(),
		})
	}

	if err := appointment.UpdateStatus(db.DB, req.Status); err != nil {
		var invalidState *models.InvalidStateError
		if errors.As(err, &invalidState) {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Invalid status transition",
				Error:   err.Error(),
			})
		}
		var validation *models.ValidationError
		if errors.As(err, &validation) {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid status",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update appointment",
			Error:   err.Error(),
		})
	}

	if err := utils.NotifyStatusChange(&appointment, req.Status); err != nil {
		// Partial success: the status change is already persisted.
		return c.JSON(fiber.Map{
			"appointment":        appointment,
			"notification_sent":  false,
			"notification_error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"appointment":       appointment,
		"notification_sent": true,
	})
}

// DeleteAppointment removes an appointment by ID.
func DeleteAppointment(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := db.DB.First(&appointment, c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Appointment not found",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointment",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Delete(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete appointment",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
