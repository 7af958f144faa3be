package guard

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/eSolutionsGrup/license-manager/guard/permission"
)

// Sentinel errors returned by the guard package.
var (
	// ErrAccessDenied indicates a privileged operation was blocked by the
	// active enforcement point.
	ErrAccessDenied = errors.New("guard: access denied")

	// ErrInsecureEnvironment indicates the guard could not be installed
	// because the environment refused the registration. The process must
	// not continue.
	ErrInsecureEnvironment = errors.New("guard: environment deemed insecure")

	// ErrNilPolicy indicates a nil Policy was passed where a candidate
	// enforcement point is required.
	ErrNilPolicy = errors.New("guard: policy must not be nil")
)

// AccessDeniedError is returned when a privileged operation is blocked.
// It wraps ErrAccessDenied so that errors.Is(err, ErrAccessDenied) works.
type AccessDeniedError struct {
	// Kind is the operation category that was denied.
	Kind permission.Kind

	// TypeName is the simple name of the offending declaring type, when
	// the denial concerns a reflection-unlock target.
	TypeName string

	// Reason explains why the operation was denied.
	Reason string

	// EventID correlates this denial across logs and traces.
	EventID string
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrAccessDenied.Error(), e.Reason)
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}

// deny constructs an AccessDeniedError with a fresh correlation event ID.
func deny(kind permission.Kind, typeName, reason string) *AccessDeniedError {
	return &AccessDeniedError{
		Kind:     kind,
		TypeName: typeName,
		Reason:   reason,
		EventID:  uuid.NewString(),
	}
}

// InsecureEnvironmentError is returned when guard installation is refused
// by an existing enforcement point. It wraps ErrInsecureEnvironment.
type InsecureEnvironmentError struct {
	// Cause is the refusal raised by the existing enforcement point.
	Cause error
}

func (e *InsecureEnvironmentError) Error() string {
	if e == nil || e.Cause == nil {
		return ErrInsecureEnvironment.Error()
	}

	return fmt.Sprintf("%s: installation refused: %v", ErrInsecureEnvironment.Error(), e.Cause)
}

func (e *InsecureEnvironmentError) Unwrap() error {
	return ErrInsecureEnvironment
}
