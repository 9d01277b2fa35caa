package contact

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every NotFoundError via errors.Is.
var ErrNotFound = errors.New("contact not found")

// ValidationError reports a field value that does not meet its format rule.
type ValidationError struct {
	Field  string // name, phone, birthday
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NotFoundError reports an operation that referenced an unknown name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no contact found with name %s", e.Name)
}

// Is lets errors.Is(err, ErrNotFound) succeed.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Validation reasons, used verbatim as the user-facing message.
const (
	ReasonNameRequired    = "contact name is required"
	ReasonPhoneFormat     = "phone number must be 10 digits"
	ReasonBirthdayFormat  = "invalid date format, use DD.MM.YYYY"
	ReasonBirthdayAlready = "only one birthday allowed per contact"
)
