//go:build unit || e2e

package builder

import (
	"time"

	"guestlink/internal/domain/link"
	"guestlink/internal/infra/queries"
	"guestlink/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// Fixed reference instant for link fixtures; tests pin their clocks to it.
var LinkNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type LinkBuilder struct {
	ID         int64
	Token      string
	Role       link.Role
	ExpiresAt  time.Time
	Completed  bool
	RoomNumber int
	StartDate  time.Time
	EndDate    time.Time
	Cost       int64
	URL        string
}

func NewLinkBuilder() *LinkBuilder {
	return &LinkBuilder{
		ID:         7,
		Token:      "abc123",
		Role:       link.RoleRegistration,
		ExpiresAt:  LinkNow.Add(24 * time.Hour),
		RoomNumber: 101,
		StartDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		Cost:       150000,
		URL:        "https://hotel.example.com/registro/abc123",
	}
}

func (b *LinkBuilder) With(mutate func(*LinkBuilder)) *LinkBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *LinkBuilder) BuildDomain() *link.RegistrationLink {
	return &link.RegistrationLink{
		ID:         b.ID,
		Token:      b.Token,
		Role:       b.Role,
		ExpiresAt:  b.ExpiresAt,
		Completed:  b.Completed,
		RoomNumber: b.RoomNumber,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Cost:       b.Cost,
		URL:        b.URL,
	}
}

func (b *LinkBuilder) BuildDecoded() *link.DecodedToken {
	return &link.DecodedToken{
		LinkID:    b.ID,
		Role:      b.Role,
		IssuedAt:  LinkNow.Add(-time.Hour),
		ExpiresAt: b.ExpiresAt,
	}
}

func (b *LinkBuilder) BuildInfra() queries.RegistrationLinks {
	row := queries.RegistrationLinks{
		ID:        b.ID,
		Token:     b.Token,
		Role:      b.Role.String(),
		ExpiresAt: pgconv.TimeToPgtype(b.ExpiresAt),
		Completed: b.Completed,
	}
	if b.URL != "" {
		row.Url = pgtype.Text{String: b.URL, Valid: true}
	}
	if b.RoomNumber != 0 {
		row.RoomNumber = pgtype.Int4{Int32: int32(b.RoomNumber), Valid: true}
	}
	if !b.StartDate.IsZero() {
		row.StartDate = pgtype.Date{Time: b.StartDate, Valid: true}
	}
	if !b.EndDate.IsZero() {
		row.EndDate = pgtype.Date{Time: b.EndDate, Valid: true}
	}
	if b.Cost != 0 {
		row.Cost = pgtype.Int8{Int64: b.Cost, Valid: true}
	}
	return row
}

// Fluent builder methods
func (b *LinkBuilder) WithID(id int64) *LinkBuilder {
	b.ID = id
	return b
}

func (b *LinkBuilder) WithToken(token string) *LinkBuilder {
	b.Token = token
	return b
}

func (b *LinkBuilder) WithRole(role link.Role) *LinkBuilder {
	b.Role = role
	return b
}

func (b *LinkBuilder) WithURL(url string) *LinkBuilder {
	b.URL = url
	return b
}

func (b *LinkBuilder) WithRoomNumber(n int) *LinkBuilder {
	b.RoomNumber = n
	return b
}

func (b *LinkBuilder) WithCost(cost int64) *LinkBuilder {
	b.Cost = cost
	return b
}

func (b *LinkBuilder) WithoutDates() *LinkBuilder {
	b.StartDate = time.Time{}
	b.EndDate = time.Time{}
	return b
}

func (b *LinkBuilder) ExpiringAt(t time.Time) *LinkBuilder {
	b.ExpiresAt = t
	return b
}

func (b *LinkBuilder) AsExpired() *LinkBuilder {
	b.ExpiresAt = LinkNow.Add(-time.Minute)
	return b
}

func (b *LinkBuilder) AsCompleted() *LinkBuilder {
	b.Completed = true
	return b
}
