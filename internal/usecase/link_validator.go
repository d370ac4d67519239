package usecase

import (
	"context"
	"log/slog"
	"strings"

	"guestlink/internal/domain/link"
	"guestlink/internal/pkg/clock"
	"guestlink/internal/pkg/errs"
	"guestlink/internal/usecase/metrics"
)

// Outcome is the result of validating a link token. When Eligible is false,
// Message is the text to show the guest and Link is nil.
type Outcome struct {
	Eligible bool
	Link     *link.RegistrationLink
	Token    string
	Reason   link.Reason
	Message  string
}

type LinkValidator interface {
	Validate(ctx context.Context, token string) Outcome
}

type linkValidatorImpl struct {
	backend LinkBackend
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewLinkValidator(backend LinkBackend, clk clock.Clock, m *metrics.Metrics) LinkValidator {
	return &linkValidatorImpl{
		backend: backend,
		clock:   clk,
		metrics: m,
	}
}

// Validate performs at most one decode and one fetch. It never retries and never
// writes to the backend.
func (v *linkValidatorImpl) Validate(ctx context.Context, token string) Outcome {
	token = strings.TrimSpace(token)
	if token == "" {
		return v.ineligible(link.ReasonInvalidToken, link.MsgInvalidLink)
	}

	// issued calls run to completion even if the guest goes away
	ctx = context.WithoutCancel(ctx)

	decoded, err := v.backend.ValidateToken(ctx, token)
	if err != nil {
		reason, msg := classifyBackendError(err, link.ReasonValidationFailed)
		slog.Warn("link token validation failed", "reason", reason.String(), "error", err.Error())
		return v.ineligible(reason, msg)
	}

	if !decoded.HasRegistrationRole() {
		slog.Warn("link token has wrong role", "link_id", decoded.LinkID, "role", decoded.Role.String())
		return v.ineligible(link.ReasonInsufficientRole, link.MsgInsufficientRole)
	}

	l, err := v.backend.FetchLink(ctx, decoded.LinkID)
	if err != nil {
		reason, msg := classifyBackendError(err, link.ReasonFetchFailed)
		slog.Warn("link fetch failed", "link_id", decoded.LinkID, "reason", reason.String(), "error", err.Error())
		return v.ineligible(reason, msg)
	}
	if l == nil {
		return v.ineligible(link.ReasonFetchFailed, link.MsgFetchError)
	}

	if reason := link.CheckEligibility(l, v.clock.Now()); reason != link.ReasonNone {
		slog.Info("link is not eligible", "link_id", l.ID, "reason", reason.String())
		return v.ineligible(reason, reason.Message())
	}

	v.metrics.IncrementValidation(link.ReasonNone.String())
	return Outcome{
		Eligible: true,
		Link:     l,
		Token:    l.SubmissionToken(),
		Reason:   link.ReasonNone,
	}
}

func (v *linkValidatorImpl) ineligible(reason link.Reason, msg string) Outcome {
	v.metrics.IncrementValidation(reason.String())
	return Outcome{
		Eligible: false,
		Reason:   reason,
		Message:  msg,
	}
}

// classifyBackendError shows whitelisted backend messages verbatim and collapses
// everything else to the fallback reason's generic message.
func classifyBackendError(err error, fallback link.Reason) (link.Reason, string) {
	for _, known := range link.KnownBackendErrors {
		if errs.Is(err, known.Err) || err.Error() == known.Err.Error() {
			return known.Reason, known.Err.Error()
		}
	}
	return fallback, fallback.Message()
}
