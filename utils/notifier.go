package utils

import (
	"fmt"
	"os"

	"github.com/alipiodental/clinic-server/models"
)

// NotificationError marks a notification that failed after the status change
// was already persisted. Callers report it as partial success, never as a
// reason to roll the appointment back.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("status saved but notification failed: %v", e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}

// sendMail is the delivery function behind NotifyStatusChange, swappable in
// tests.
var sendMail = SendEmail

func clinicName() string {
	if name := os.Getenv("CLINIC_NAME"); name != "" {
		return name
	}
	return "Alipio Dental Clinic"
}

// StatusEmail builds the subject and HTML body telling a patient their
// appointment was confirmed or declined.
func StatusEmail(appointment *models.Appointment, status models.AppointmentStatus) (subject, body string) {
	confirmed := status == models.StatusConfirmed
	clinic := clinicName()

	heading := "Appointment Declined"
	color := "#f43f5e"
	verdict := "Declined"
	closing := "Please contact us to reschedule."
	subject = fmt.Sprintf("Appointment Update - %s", clinic)
	if confirmed {
		heading = "Appointment Confirmed"
		color = "#10b981"
		verdict = "Approved"
		closing = "See you at the clinic!"
		subject = fmt.Sprintf("Appointment Confirmed - %s", clinic)
	}

	notesBlock := ""
	if appointment.Notes != "" {
		notesBlock = fmt.Sprintf(`<div style="background-color: #f8fafc; padding: 15px; border-left: 4px solid #cbd5e1; margin: 20px 0;">
				<p style="margin: 0; font-style: italic;">"%s"</p>
			</div>`, appointment.Notes)
	}

	body = fmt.Sprintf(`
		<div style="font-family: sans-serif; max-width: 600px; margin: auto; border: 1px solid #e2e8f0; border-radius: 12px; overflow: hidden;">
			<div style="background-color: %s; padding: 20px; text-align: center; color: white;">
				<h1 style="margin: 0; font-size: 24px;">%s</h1>
			</div>
			<div style="padding: 30px; color: #1e293b; line-height: 1.6;">
				<p>Hello <strong>%s</strong>,</p>
				<p>Your appointment request for <strong>%s</strong> has been %s.</p>
				%s
				<p>%s</p>
			</div>
		</div>
	`, color, heading, appointment.PatientName, DisplayTime(appointment.ScheduledAt), verdict, notesBlock, closing)

	return subject, body
}

// NotifyStatusChange emails the patient about a status change. Fire and
// forget from the caller's perspective: a failure is wrapped and reported,
// never retried here.
func NotifyStatusChange(appointment *models.Appointment, status models.AppointmentStatus) error {
	subject, body := StatusEmail(appointment, status)
	if err := sendMail(appointment.Email, subject, body); err != nil {
		return &NotificationError{Err: err}
	}
	return nil
}
