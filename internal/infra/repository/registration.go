package repository

import (
	"context"
	"log/slog"

	"guestlink/internal/domain/link"
	"guestlink/internal/domain/registration"
	"guestlink/internal/infra"
	"guestlink/internal/infra/db"
	"guestlink/internal/infra/queries"
	"guestlink/internal/pkg/clock"
	"guestlink/internal/pkg/errs"
	"guestlink/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RegistrationWriteQueries interface {
	LockLinkForUpdate(ctx context.Context, dbtx db.DBTX, id int64) (queries.LockLinkForUpdateRow, error)
	CreateRegistration(ctx context.Context, dbtx db.DBTX, arg queries.CreateRegistrationParams) (uuid.UUID, error)
	CreateRegistrationGuest(ctx context.Context, dbtx db.DBTX, arg queries.CreateRegistrationGuestParams) error
	MarkLinkCompleted(ctx context.Context, dbtx db.DBTX, id int64) error
}

type RegistrationRepository struct {
	queries RegistrationWriteQueries
	db      db.TxBeginner
	clock   clock.Clock
}

func NewRegistrationRepository(queries RegistrationWriteQueries, db db.TxBeginner, clk clock.Clock) *RegistrationRepository {
	return &RegistrationRepository{
		queries: queries,
		db:      db,
		clock:   clk,
	}
}

// Create stores the registration and marks the link completed in one transaction.
// A completed link yields a CONFLICT marked link.ErrAlreadyCompleted; an expired
// link yields a CONFLICT marked link.ErrLinkExpired.
func (r *RegistrationRepository) Create(ctx context.Context, linkID int64, data registration.FormData) (uuid.UUID, error) {
	return db.RunInTxWithRetry(ctx, r.db, db.DefaultRetryPolicy, func(tx db.DBTX) (uuid.UUID, error) {
		locked, err := r.queries.LockLinkForUpdate(ctx, tx, linkID)
		if err != nil {
			if pgconv.IsNoRows(err) {
				return uuid.Nil, infra.WrapRepoErr("registration link not found", err, infra.KindNotFound)
			}
			return uuid.Nil, infra.WrapRepoErr("failed to lock registration link", err)
		}

		if locked.Completed {
			return uuid.Nil, errs.Mark(
				infra.WrapRepoErr("registration link already completed", nil, infra.KindConflict),
				link.ErrAlreadyCompleted,
			)
		}
		if r.clock.Now().After(pgconv.TimeFromPgtype(locked.ExpiresAt)) {
			return uuid.Nil, errs.Mark(
				infra.WrapRepoErr("registration link expired", nil, infra.KindConflict),
				link.ErrLinkExpired,
			)
		}

		registrationID, err := r.queries.CreateRegistration(ctx, tx, registrationToParams(linkID, data))
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create registration", err)
		}

		for _, guest := range guestsToParams(registrationID, data) {
			if err := r.queries.CreateRegistrationGuest(ctx, tx, guest); err != nil {
				return uuid.Nil, infra.WrapRepoErr("failed to create registration guest", err)
			}
		}

		if err := r.queries.MarkLinkCompleted(ctx, tx, linkID); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to mark registration link completed", err)
		}

		slog.Debug("registration stored", "link_id", linkID, "registration_id", registrationID.String())
		return registrationID, nil
	})
}
