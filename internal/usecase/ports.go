package usecase

import (
	"context"

	"guestlink/internal/domain/link"
	"guestlink/internal/domain/registration"
)

// LinkBackend resolves link tokens. Implementations report failures the guest may
// see with the sentinels in the link package.
type LinkBackend interface {
	ValidateToken(ctx context.Context, token string) (*link.DecodedToken, error)
	FetchLink(ctx context.Context, linkID int64) (*link.RegistrationLink, error)
}

// RegistrationBackend stores a completed registration. It is not idempotent.
// Messages meant for the guest are attached with errs.WithUserMessage.
type RegistrationBackend interface {
	CreateRegistration(ctx context.Context, token string, payload registration.FormData) error
}
