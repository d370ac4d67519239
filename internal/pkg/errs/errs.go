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

// Is also matches references attached with Mark.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// WithUserMessage attaches a message that is safe to show to the guest.
// Stored as a hint so it survives Wrap/Mark.
func WithUserMessage(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.WithHint(err, msg)
}

// UserMessage returns the outermost user-facing message attached to err.
func UserMessage(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	// GetAllHints lists the innermost hint first
	hints := cr.GetAllHints(err)
	for i := len(hints) - 1; i >= 0; i-- {
		if h := strings.TrimSpace(hints[i]); h != "" {
			return h, true
		}
	}
	return "", false
}

// ExtractStackLines renders err with its recorded stack and keeps at most maxLines lines.
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
