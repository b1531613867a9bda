package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alipiodental/clinic-server/models"
)

func sampleAppointment() *models.Appointment {
	return &models.Appointment{
		PatientName: "Maria Santos",
		Email:       "maria@example.com",
		ScheduledAt: time.Date(2025, time.December, 28, 10, 0, 0, 0, time.UTC),
		Notes:       "Wisdom tooth pain",
		Status:      models.StatusPending,
	}
}

func TestStatusEmailConfirmed(t *testing.T) {
	a := sampleAppointment()
	subject, body := StatusEmail(a, models.StatusConfirmed)

	if !strings.Contains(subject, "Confirmed") {
		t.Errorf("subject %q should mention confirmation", subject)
	}
	for _, want := range []string{"Maria Santos", "Approved", "See you at the clinic", "Wisdom tooth pain"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestStatusEmailCancelled(t *testing.T) {
	a := sampleAppointment()
	subject, body := StatusEmail(a, models.StatusCancelled)

	if strings.Contains(subject, "Confirmed") {
		t.Errorf("subject %q should not mention confirmation", subject)
	}
	for _, want := range []string{"Maria Santos", "Declined", "reschedule"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestStatusEmailOmitsEmptyNotes(t *testing.T) {
	a := sampleAppointment()
	a.Notes = ""
	_, body := StatusEmail(a, models.StatusConfirmed)
	if strings.Contains(body, "border-left") {
		t.Error("notes block rendered for an appointment without notes")
	}
}

// The persist-then-notify sequence is not transactional: when the send fails
// after the status change was saved, the new status stands and the failure is
// reported as a NotificationError, which the status handler surfaces as
// notification_sent=false rather than a full failure.
func TestNotifyStatusChangePartialSuccess(t *testing.T) {
	orig := sendMail
	defer func() { sendMail = orig }()
	sendMail = func(to, subject, body string) error {
		return errors.New("smtp connection refused")
	}

	a := sampleAppointment()
	if err := a.CanTransition(models.StatusConfirmed); err != nil {
		t.Fatalf("pending appointment should transition: %v", err)
	}
	a.Status = models.StatusConfirmed // persisted before any notification

	err := NotifyStatusChange(a, models.StatusConfirmed)
	var nerr *NotificationError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected *NotificationError, got %T (%v)", err, err)
	}
	if a.Status != models.StatusConfirmed {
		t.Fatalf("status rolled back to %s after a notify failure", a.Status)
	}
}

func TestNotifyStatusChangeSuccess(t *testing.T) {
	orig := sendMail
	defer func() { sendMail = orig }()
	var gotTo string
	sendMail = func(to, subject, body string) error {
		gotTo = to
		return nil
	}

	a := sampleAppointment()
	if err := NotifyStatusChange(a, models.StatusCancelled); err != nil {
		t.Fatalf("send succeeded but got %v", err)
	}
	if gotTo != a.Email {
		t.Errorf("sent to %q, want %q", gotTo, a.Email)
	}
}

func TestNotificationErrorWraps(t *testing.T) {
	cause := errors.New("smtp timeout")
	err := &NotificationError{Err: cause}
	if !errors.Is(err, cause) {
		t.Error("NotificationError should wrap its cause")
	}
	if !strings.Contains(err.Error(), "status saved") {
		t.Errorf("message %q should make the partial success explicit", err.Error())
	}
}
