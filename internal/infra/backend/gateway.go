// Package backend implements the usecase ports against the link token codec and Postgres.
package backend

import (
	"context"
	"errors"
	"log/slog"

	"guestlink/internal/domain/link"
	"guestlink/internal/domain/registration"
	"guestlink/internal/infra"
	"guestlink/internal/pkg/errs"
	"guestlink/internal/pkg/jwt"

	"github.com/google/uuid"
)

type TokenDecoder interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type LinkReader interface {
	FindByID(ctx context.Context, id int64) (*link.RegistrationLink, error)
}

type RegistrationWriter interface {
	Create(ctx context.Context, linkID int64, data registration.FormData) (uuid.UUID, error)
}

type Gateway struct {
	tokens        TokenDecoder
	links         LinkReader
	registrations RegistrationWriter
}

func NewGateway(tokens TokenDecoder, links LinkReader, registrations RegistrationWriter) *Gateway {
	return &Gateway{
		tokens:        tokens,
		links:         links,
		registrations: registrations,
	}
}

func (g *Gateway) ValidateToken(_ context.Context, token string) (*link.DecodedToken, error) {
	claims, err := g.tokens.ValidateToken(token)
	if err != nil {
		return nil, tokenError(err)
	}
	return claims.Decode(), nil
}

func (g *Gateway) FetchLink(ctx context.Context, linkID int64) (*link.RegistrationLink, error) {
	l, err := g.links.FindByID(ctx, linkID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, link.ErrInvalidOrExpiredLink)
		}
		return nil, errs.Wrap(err, "fetch registration link")
	}
	return l, nil
}

// CreateRegistration resolves the link from the submission token and stores the payload.
// Errors carry the guest-facing message when there is one.
func (g *Gateway) CreateRegistration(ctx context.Context, token string, payload registration.FormData) error {
	claims, err := g.tokens.ValidateToken(token)
	if err != nil {
		err = tokenError(err)
		return errs.WithUserMessage(err, link.ErrInvalidOrExpiredLink.Error())
	}
	if !claims.Decode().HasRegistrationRole() {
		return errs.WithUserMessage(errs.New("token role cannot register"), link.MsgInsufficientRole)
	}

	registrationID, err := g.registrations.Create(ctx, claims.LinkID, payload)
	if err != nil {
		switch {
		case errs.Is(err, link.ErrAlreadyCompleted):
			return errs.WithUserMessage(err, link.MsgAlreadyCompleted)
		case errs.Is(err, link.ErrLinkExpired):
			return errs.WithUserMessage(err, link.MsgLinkExpired)
		case infra.IsKind(err, infra.KindNotFound):
			return errs.WithUserMessage(err, link.ErrInvalidOrExpiredLink.Error())
		}
		return errs.Wrap(err, "create registration")
	}

	slog.Info("registration created", "link_id", claims.LinkID, "registration_id", registrationID.String())
	return nil
}

func tokenError(err error) error {
	if errors.Is(err, jwt.ErrExpiredToken) {
		return errs.Mark(err, link.ErrInvalidOrExpiredLink)
	}
	return errs.Mark(err, link.ErrInvalidToken)
}
