package components

import (
	"sauna-booking/internal/infra/readstore"
	"sauna-booking/internal/infra/repository"
	sqlc "sauna-booking/internal/infra/sqlc/generated"
	"sauna-booking/internal/infra/uow"
	"sauna-booking/internal/usecase/commands"
	"sauna-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	uow.NewPostgresUoW,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Slot overrides and reservation summaries, read from one snapshot
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.SlotSnapshotStore)),
		),
		// Reservation list for the ops panel
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repository.NewSlotOverrideRepository,
			fx.As(new(commands.SlotOverrideRepository)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
