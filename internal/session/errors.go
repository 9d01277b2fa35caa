package session

import (
	"errors"
	"fmt"

	"contactbook/internal/contact"
)

// ArgumentError reports a command called with the wrong number of arguments.
type ArgumentError struct {
	Command string
	Usage   string
}

func (e *ArgumentError) Error() string {
	if e.Usage == "" {
		return "usage: " + e.Command
	}
	return fmt.Sprintf("usage: %s %s", e.Command, e.Usage)
}

// errorMessage converts a command failure into its one-line reply.
func errorMessage(err error) string {
	var (
		argErr      *ArgumentError
		validErr    *contact.ValidationError
		notFoundErr *contact.NotFoundError
	)
	switch {
	case errors.As(err, &argErr):
		return argErr.Error()
	case errors.As(err, &validErr):
		return validErr.Error()
	case errors.As(err, &notFoundErr):
		return notFoundErr.Error()
	default:
		return err.Error()
	}
}
