package media

import "fmt"

// ProtectedReason says which required field a removal would have violated.
type ProtectedReason int

const (
	CannotRemoveCreator ProtectedReason = iota
	CannotRemoveResolution
	CannotRemoveRuntime
)

func (r ProtectedReason) Field() string {
	switch r {
	case CannotRemoveCreator:
		return FieldCreator
	case CannotRemoveResolution:
		return FieldResolution
	case CannotRemoveRuntime:
		return FieldRuntime
	}
	return "unknown"
}

func (r ProtectedReason) String() string {
	switch r {
	case CannotRemoveCreator:
		return "CannotRemoveCreator"
	case CannotRemoveResolution:
		return "CannotRemoveResolution"
	case CannotRemoveRuntime:
		return "CannotRemoveRuntime"
	}
	return fmt.Sprintf("ProtectedReason(%d)", int(r))
}

// ProtectedFieldError is returned when removing a field would leave a record
// without metadata its kind requires.
type ProtectedFieldError struct {
	Reason   ProtectedReason
	Filename string
	Kind     Kind
}

func (e *ProtectedFieldError) Error() string {
	return fmt.Sprintf("cannot remove %s from %s because it is of type %s", e.Reason.Field(), e.Filename, e.Kind)
}
