package readstore

import (
	"context"
	"time"

	"sauna-booking/internal/domain/booking"
	"sauna-booking/internal/infra"
	"sauna-booking/internal/infra/repository/converter"
	sqlc "sauna-booking/internal/infra/sqlc/generated"
	"sauna-booking/internal/pkg/pgconv"
	"sauna-booking/internal/usecase/queries"
	"sauna-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityReadQueries interface {
	ListSlotOverridesByDates(ctx context.Context, db sqlc.DBTX, dates []pgtype.Date) ([]sqlc.BookingSlot, error)
	ListReservationSummariesByDates(ctx context.Context, db sqlc.DBTX, dates []pgtype.Date) ([]sqlc.ListReservationSummariesByDatesRow, error)
}

type AvailabilityReadStore struct {
	queries AvailabilityReadQueries
	uow     shared.UnitOfWork
}

func NewAvailabilityReadStore(queries *sqlc.Queries, uow shared.UnitOfWork) *AvailabilityReadStore {
	return newAvailabilityReadStore(queries, uow)
}

func newAvailabilityReadStore(queries AvailabilityReadQueries, uow shared.UnitOfWork) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		uow:     uow,
	}
}

// SnapshotRange loads overrides and reservation summaries for all dates.
// Both reads share one transaction snapshot, so a reservation committed
// between them cannot show up in only one of the two collections.
func (r *AvailabilityReadStore) SnapshotRange(ctx context.Context, dates []time.Time) (*queries.SlotSnapshot, error) {
	pgDates := pgconv.DatesToPgtype(dates)
	snapshot := &queries.SlotSnapshot{}

	err := r.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		slotRows, err := r.queries.ListSlotOverridesByDates(ctx, db, pgDates)
		if err != nil {
			return infra.WrapRepoErr("failed to list slot overrides", err)
		}
		resRows, err := r.queries.ListReservationSummariesByDates(ctx, db, pgDates)
		if err != nil {
			return infra.WrapRepoErr("failed to list reservation summaries", err)
		}

		snapshot.Overrides = make([]booking.SlotOverride, len(slotRows))
		for i, row := range slotRows {
			snapshot.Overrides[i] = converter.SlotOverrideFromInfra(row)
		}
		snapshot.Reservations = make([]booking.ReservationSummary, len(resRows))
		for i, row := range resRows {
			snapshot.Reservations[i] = converter.ReservationSummaryFromInfra(row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}
