package models

import (
	"errors"
	"testing"
)

func TestCanTransitionFromPending(t *testing.T) {
	for _, target := range []AppointmentStatus{StatusConfirmed, StatusCancelled} {
		a := Appointment{Status: StatusPending}
		if err := a.CanTransition(target); err != nil {
			t.Errorf("pending -> %s rejected: %v", target, err)
		}
	}
}

func TestCanTransitionRejectsTerminalStates(t *testing.T) {
	tests := []struct {
		from AppointmentStatus
		to   AppointmentStatus
	}{
		{StatusConfirmed, StatusConfirmed},
		{StatusConfirmed, StatusCancelled},
		{StatusCancelled, StatusConfirmed},
		{StatusCancelled, StatusCancelled},
	}
	for _, tt := range tests {
		a := Appointment{Status: tt.from}
		err := a.CanTransition(tt.to)
		if err == nil {
			t.Errorf("%s -> %s should be rejected", tt.from, tt.to)
			continue
		}
		var invalid *InvalidStateError
		if !errors.As(err, &invalid) {
			t.Errorf("%s -> %s: expected *InvalidStateError, got %T", tt.from, tt.to, err)
		}
	}
}

func TestCanTransitionRejectsBadTargets(t *testing.T) {
	for _, target := range []AppointmentStatus{StatusPending, "done", ""} {
		a := Appointment{Status: StatusPending}
		err := a.CanTransition(target)
		if err == nil {
			t.Errorf("pending -> %q should be rejected", target)
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("pending -> %q: expected *ValidationError, got %T", target, err)
		}
	}
}

func TestCanTransitionDoesNotMutate(t *testing.T) {
	a := Appointment{Status: StatusConfirmed}
	_ = a.CanTransition(StatusCancelled)
	if a.Status != StatusConfirmed {
		t.Fatalf("status mutated to %s on a rejected check", a.Status)
	}
}
