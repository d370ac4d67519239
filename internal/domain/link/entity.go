package link

import (
	"strings"
	"time"
)

// RegistrationLink is the backend's view of an issued link. The service never modifies it.
type RegistrationLink struct {
	ID         int64
	Token      string
	Role       Role
	ExpiresAt  time.Time
	Completed  bool
	RoomNumber int
	StartDate  time.Time
	EndDate    time.Time
	Cost       int64
	URL        string
}

// DecodedToken holds the claims minted into a link token.
type DecodedToken struct {
	LinkID    int64
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (d *DecodedToken) HasRegistrationRole() bool {
	return d != nil && d.Role == RoleRegistration
}

// TokenFromURL returns the trailing path segment of a link URL.
func TokenFromURL(rawURL string) string {
	s := rawURL
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimRight(s, "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		return s[i+1:]
	}
	return s
}

// SubmissionToken is the token the guest form submits with.
func (l *RegistrationLink) SubmissionToken() string {
	if t := TokenFromURL(l.URL); t != "" {
		return t
	}
	return l.Token
}
