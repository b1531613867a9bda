package models

import "fmt"

// ValidationError marks input rejected before any write happened.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidStateError marks a status transition attempted from a state that
// does not allow it. The stored record is untouched.
type InvalidStateError struct {
	From AppointmentStatus
	To   AppointmentStatus
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot transition appointment from %s to %s", e.From, e.To)
}
