package commands

import (
	"context"
	"time"

	"sauna-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type ReservationRepository interface {
	// Reserve runs the store's atomic check-and-insert for one slot.
	Reserve(ctx context.Context, res *booking.Reservation, defaultCapacity int) (uuid.UUID, booking.ReserveOutcome, error)
	DeleteBySlot(ctx context.Context, date time.Time, startTime string) (int64, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type SlotOverrideRepository interface {
	Upsert(ctx context.Context, o booking.SlotOverride) error
	// UpsertDay must write all overrides or none. Existing rows keep their
	// capacity and notes unless reset is set.
	UpsertDay(ctx context.Context, overrides []booking.SlotOverride, reset bool) error
}
