// internal/app/approval/errors.go
package approval

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies approval failures so callers can render an actionable
// message instead of a generic failure. Only errors outside this taxonomy
// fall back to a plain internal-error response.
type Kind string

const (
	// KindValidation: the caller supplied insufficient or malformed identifiers.
	KindValidation Kind = "validation"
	// KindNotFound: the application or organization does not exist.
	KindNotFound Kind = "not_found"
	// KindNoApplicationRecord: the organization exists but has no application
	// trail. Signals manual data repair, not a bug.
	KindNoApplicationRecord Kind = "no_application_record"
	// KindProvisioning: the organization status update failed.
	KindProvisioning Kind = "provisioning"
	// KindLinking: the principal update failed after the organization was
	// already approved. The partial state is recoverable by re-running approve.
	KindLinking Kind = "linking"
)

// Error is a classified approval failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the classification from err. ok is false for errors
// outside the taxonomy.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// HTTPStatus maps an approval error to the response status the admin API
// uses. Unclassified errors are internal.
func HTTPStatus(err error) int {
	kind, ok := KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound, KindNoApplicationRecord:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
