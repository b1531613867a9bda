package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is a patient booking request. It is created pending and moves
// exactly once to confirmed or cancelled by an administrator action; both are
// terminal. Column names follow the legacy appointments collection (patient
// name in "title", scheduled time in "date").
type Appointment struct {
	gorm.Model
	Reference   string            `json:"reference" gorm:"uniqueIndex"`
	PatientName string            `json:"title" gorm:"column:title"`
	Email       string            `json:"email"`
	ScheduledAt time.Time         `json:"date" gorm:"column:date"`
	Notes       string            `json:"notes,omitempty"`
	Status      AppointmentStatus `json:"status"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	if a.Reference == "" {
		a.Reference = uuid.NewString()
	}
	return nil
}

// CanTransition checks a status change without touching the database.
// Only pending appointments may move, and only to confirmed or cancelled.
func (a *Appointment) CanTransition(newStatus AppointmentStatus) error {
	if newStatus != StatusConfirmed && newStatus != StatusCancelled {
		return &ValidationError{Field: "status", Reason: "must be confirmed or cancelled"}
	}
	if a.Status != StatusPending {
		return &InvalidStateError{From: a.Status, To: newStatus}
	}
	return nil
}

// UpdateStatus applies a status transition and persists it. Notifying the
// patient is the caller's job; a failed notification must never roll the
// persisted status back.
func (a *Appointment) UpdateStatus(tx *gorm.DB, newStatus AppointmentStatus) error {
	if err := a.CanTransition(newStatus); err != nil {
		return err
	}
	a.Status = newStatus
	return tx.Save(a).Error
}
