package event

import "fmt"

// ValidationError reports a constructor argument that violates a field
// contract. Construction never silently corrects bad input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AlreadySetError reports a second write to a write-once lifecycle field.
type AlreadySetError struct {
	Field string
}

func (e *AlreadySetError) Error() string {
	return fmt.Sprintf("%s already set", e.Field)
}

// InvalidStateError reports a lifecycle operation attempted out of order,
// such as recording an exit before any entry.
type InvalidStateError struct {
	Op     string
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}
