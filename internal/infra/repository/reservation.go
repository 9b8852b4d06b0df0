package repository

import (
	"context"
	"time"

	"sauna-booking/internal/domain/booking"
	"sauna-booking/internal/infra"
	"sauna-booking/internal/infra/repository/converter"
	sqlc "sauna-booking/internal/infra/sqlc/generated"
	"sauna-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	ReserveBookingSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.ReserveBookingSlotParams) (sqlc.ReserveBookingSlotRow, error)
	DeleteReservationsBySlot(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteReservationsBySlotParams) (int64, error)
	DeleteReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries *sqlc.Queries, db sqlc.DBTX) *ReservationRepository {
	return newReservationRepository(queries, db)
}

func newReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Reserve hands the whole check-and-insert to reserve_booking_slot so the
// store serialises competing callers for the same slot. A rejecting outcome
// is not an error at this layer.
func (r *ReservationRepository) Reserve(ctx context.Context, res *booking.Reservation, defaultCapacity int) (uuid.UUID, booking.ReserveOutcome, error) {
	params, err := converter.ReservationToReserveParams(res, defaultCapacity)
	if err != nil {
		return uuid.Nil, "", infra.WrapRepoErr("failed to convert reservation", err)
	}

	row, err := r.queries.ReserveBookingSlot(ctx, r.db, params)
	if err != nil {
		return uuid.Nil, "", infra.WrapRepoErr("failed to reserve booking slot", err)
	}

	outcome := booking.ReserveOutcome(row.Result)
	if outcome != booking.OutcomeReserved {
		return uuid.Nil, outcome, nil
	}

	id := pgconv.UUIDPtrFromPgtype(row.ReservationID)
	if id == nil {
		return uuid.Nil, "", infra.WrapRepoErr("reserve_booking_slot returned no id", nil)
	}
	return *id, outcome, nil
}

func (r *ReservationRepository) DeleteBySlot(ctx context.Context, date time.Time, startTime string) (int64, error) {
	start, err := pgconv.TimeOfDayToPgtype(startTime)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to convert start time", err)
	}

	deleted, err := r.queries.DeleteReservationsBySlot(ctx, r.db, sqlc.DeleteReservationsBySlotParams{
		Date:      pgconv.DateToPgtype(date),
		StartTime: start,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to clear slot reservations", err)
	}
	return deleted, nil
}

func (r *ReservationRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	deleted, err := r.queries.DeleteReservationByID(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if deleted == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
