package commands

import (
	"context"
	"log/slog"
	"strings"

	"sauna-booking/internal/domain/booking"
	"sauna-booking/internal/infra"
	"sauna-booking/internal/pkg/clock"
	"sauna-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const canonicalUUIDLength = 36

type SlotAdminCommands interface {
	UpdateSlot(ctx context.Context, in booking.SlotOverrideInput) error
	// ClearSlot deletes every reservation at (date, start) and reports how many.
	ClearSlot(ctx context.Context, date, startTime string) (int64, error)
	BlockDay(ctx context.Context, date string) error
	UnblockDay(ctx context.Context, date string) error
	// ResetDay unblocks the day, restores default capacity and drops notes.
	ResetDay(ctx context.Context, date string) error
	CancelReservation(ctx context.Context, reservationID string) error
}

type slotAdminUseCaseImpl struct {
	slotRepo        SlotOverrideRepository
	reservationRepo ReservationRepository
	clock           clock.Clock
}

func NewSlotAdminUseCase(
	slotRepo SlotOverrideRepository,
	reservationRepo ReservationRepository,
	clock clock.Clock,
) SlotAdminCommands {
	return &slotAdminUseCaseImpl{
		slotRepo:        slotRepo,
		reservationRepo: reservationRepo,
		clock:           clock,
	}
}

func (u *slotAdminUseCaseImpl) UpdateSlot(ctx context.Context, in booking.SlotOverrideInput) error {
	override, err := booking.NewSlotOverride(in, u.clock.Now())
	if err != nil {
		return err
	}
	if err := u.slotRepo.Upsert(ctx, override); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("slot override updated",
		"date", booking.FormatDate(override.Date),
		"start_time", override.StartTime,
		"capacity_social", override.CapacitySocial,
		"is_blocked", override.IsBlocked)
	return nil
}

func (u *slotAdminUseCaseImpl) ClearSlot(ctx context.Context, date, startTime string) (int64, error) {
	day, err := booking.ParseDate(date)
	if err != nil {
		return 0, err
	}
	start := booking.NormalizeTime(strings.TrimSpace(startTime))
	if !booking.IsValidTime(start) {
		return 0, booking.ErrInvalidSlotData
	}

	deleted, err := u.reservationRepo.DeleteBySlot(ctx, day, start)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("slot cleared", "date", date, "start_time", start, "deleted", deleted)
	return deleted, nil
}

func (u *slotAdminUseCaseImpl) BlockDay(ctx context.Context, date string) error {
	return u.writeDay(ctx, date, true, false)
}

func (u *slotAdminUseCaseImpl) UnblockDay(ctx context.Context, date string) error {
	return u.writeDay(ctx, date, false, false)
}

func (u *slotAdminUseCaseImpl) ResetDay(ctx context.Context, date string) error {
	return u.writeDay(ctx, date, false, true)
}

func (u *slotAdminUseCaseImpl) writeDay(ctx context.Context, date string, blocked, reset bool) error {
	day, err := booking.ParseDate(date)
	if err != nil {
		return err
	}

	overrides := booking.DayOverrides(day, blocked, u.clock.Now())
	if err := u.slotRepo.UpsertDay(ctx, overrides, reset); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("day overrides written", "date", date, "is_blocked", blocked, "reset", reset)
	return nil
}

func (u *slotAdminUseCaseImpl) CancelReservation(ctx context.Context, reservationID string) error {
	id, err := parseReservationID(reservationID)
	if err != nil {
		return err
	}

	if err := u.reservationRepo.DeleteByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("reservation cancelled", "reservation_id", id.String())
	return nil
}

// parseReservationID accepts only the canonical hyphenated form.
func parseReservationID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, ErrMissingReservationID
	}
	if len(raw) != canonicalUUIDLength {
		return uuid.Nil, ErrInvalidReservationID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidReservationID
	}
	return id, nil
}
