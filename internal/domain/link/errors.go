package link

import "errors"

// Errors the backend reports with messages that are safe to show verbatim.
var (
	ErrInvalidOrExpiredLink = errors.New("invalid or expired link")
	ErrAlreadyCompleted     = errors.New("already completed")
	ErrLinkExpired          = errors.New("expired")
	ErrInvalidToken         = errors.New("invalid")
)

// KnownBackendErrors is the whitelist, paired with the reason each one implies.
var KnownBackendErrors = []struct {
	Err    error
	Reason Reason
}{
	{Err: ErrInvalidOrExpiredLink, Reason: ReasonInvalidToken},
	{Err: ErrAlreadyCompleted, Reason: ReasonCompleted},
	{Err: ErrLinkExpired, Reason: ReasonExpired},
	{Err: ErrInvalidToken, Reason: ReasonInvalidToken},
}
