package components

import (
	"guestlink/internal/infra/backend"
	"guestlink/internal/infra/db"
	"guestlink/internal/infra/queries"
	"guestlink/internal/infra/readstore"
	"guestlink/internal/infra/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	fx.Annotate(
		queries.New,
		fx.As(new(readstore.LinkReadQueries)),
		fx.As(new(repository.RegistrationWriteQueries)),
	),
	NewDBTX,
	NewTxBeginner,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewLinkReadStore,
			fx.As(new(backend.LinkReader)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewRegistrationRepository,
			fx.As(new(backend.RegistrationWriter)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewTxBeginner(pool *pgxpool.Pool) db.TxBeginner {
	return pool
}
