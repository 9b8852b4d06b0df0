package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is understands marks added by Mark, which the standard library does not.
func Is(err, target error) bool {
	return cr.Is(err, target)
}

// Cause returns the innermost error message carrier, skipping marks and wraps.
func Cause(err error) error {
	return cr.UnwrapAll(err)
}

// Message is the text of the error as it was created, before any Wrap added
// context. Domain errors are written to be shown to users this way.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return Cause(err).Error()
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
