package readstore

import (
	"context"

	"guestlink/internal/domain/link"
	"guestlink/internal/infra"
	"guestlink/internal/infra/db"
	"guestlink/internal/infra/queries"
	"guestlink/internal/pkg/pgconv"
)

type LinkReadQueries interface {
	FindLinkByID(ctx context.Context, dbtx db.DBTX, id int64) (queries.RegistrationLinks, error)
}

type LinkReadStore struct {
	queries LinkReadQueries
	db      db.DBTX
}

func NewLinkReadStore(queries LinkReadQueries, db db.DBTX) *LinkReadStore {
	return &LinkReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LinkReadStore) FindByID(ctx context.Context, id int64) (*link.RegistrationLink, error) {
	row, err := r.queries.FindLinkByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("registration link not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find registration link by ID", err)
	}

	return toRegistrationLink(row), nil
}

func toRegistrationLink(row queries.RegistrationLinks) *link.RegistrationLink {
	return &link.RegistrationLink{
		ID:         row.ID,
		Token:      row.Token,
		Role:       link.Role(row.Role),
		ExpiresAt:  pgconv.TimeFromPgtype(row.ExpiresAt),
		Completed:  row.Completed,
		RoomNumber: pgconv.IntFromPgtype(row.RoomNumber),
		StartDate:  pgconv.DateFromPgtype(row.StartDate),
		EndDate:    pgconv.DateFromPgtype(row.EndDate),
		Cost:       pgconv.Int64FromPgtype(row.Cost),
		URL:        pgconv.StringFromPgtype(row.Url),
	}
}
