package repository

import (
	"context"

	"sauna-booking/internal/domain/booking"
	"sauna-booking/internal/infra"
	"sauna-booking/internal/infra/repository/converter"
	sqlc "sauna-booking/internal/infra/sqlc/generated"
)

type SlotOverrideWriteQueries interface {
	UpsertSlotOverride(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertSlotOverrideParams) error
	UpsertDaySlots(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertDaySlotsParams) error
}

type SlotOverrideRepository struct {
	queries SlotOverrideWriteQueries
	db      sqlc.DBTX
}

func NewSlotOverrideRepository(queries *sqlc.Queries, db sqlc.DBTX) *SlotOverrideRepository {
	return newSlotOverrideRepository(queries, db)
}

func newSlotOverrideRepository(queries SlotOverrideWriteQueries, db sqlc.DBTX) *SlotOverrideRepository {
	return &SlotOverrideRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SlotOverrideRepository) Upsert(ctx context.Context, o booking.SlotOverride) error {
	params, err := converter.SlotOverrideToUpsertParams(o)
	if err != nil {
		return infra.WrapRepoErr("failed to convert slot override", err)
	}
	if err := r.queries.UpsertSlotOverride(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to upsert slot override", err)
	}
	return nil
}

// UpsertDay writes every slot of one day in a single statement, so a failure
// leaves the day exactly as it was.
func (r *SlotOverrideRepository) UpsertDay(ctx context.Context, overrides []booking.SlotOverride, reset bool) error {
	params, err := converter.DayOverridesToParams(overrides, reset)
	if err != nil {
		return infra.WrapRepoErr("failed to convert day overrides", err)
	}
	if err := r.queries.UpsertDaySlots(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to upsert day slots", err)
	}
	return nil
}
