package components

import (
	"hotel-pms/internal/infra/db"
	"hotel-pms/internal/infra/readstore"
	"hotel-pms/internal/infra/uow"
	"hotel-pms/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// Transactional write side; repositories are reached through Tx.
		uow.NewPostgresUoW,
		// Read stores run on the pool directly.
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
