package commands

import (
	"context"
	"log/slog"
	"time"

	"sauna-booking/internal/domain/booking"
	reqdto "sauna-booking/internal/handler/dto/request"
	"sauna-booking/internal/pkg/clock"
	"sauna-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReserveResult struct {
	ID uuid.UUID
}

type ReservationCommands interface {
	Reserve(ctx context.Context, req reqdto.ReserveRequest) (*ReserveResult, error)
}

type reservationUseCaseImpl struct {
	reservationRepo ReservationRepository
	clock           clock.Clock
	location        *time.Location
}

func NewReservationUseCase(
	reservationRepo ReservationRepository,
	clock clock.Clock,
	location *time.Location,
) ReservationCommands {
	return &reservationUseCaseImpl{
		reservationRepo: reservationRepo,
		clock:           clock,
		location:        location,
	}
}

// Reserve validates the request without touching the store, then hands the
// slot check and the insert to the store as one atomic call. There is no
// retry: a rejection is final for this request.
func (r *reservationUseCaseImpl) Reserve(ctx context.Context, req reqdto.ReserveRequest) (*ReserveResult, error) {
	res, err := booking.NewReservation(req.ToInput(), r.clock.Now(), r.location)
	if err != nil {
		return nil, err
	}

	id, outcome, err := r.reservationRepo.Reserve(ctx, res, booking.DefaultSocialCapacity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if outcomeErr := outcome.Err(); outcomeErr != nil {
		slog.Info("reservation rejected",
			"date", booking.FormatDate(res.Date()),
			"start_time", res.Slot().Start,
			"booking_type", res.BookingType().String(),
			"guests", res.Guests(),
			"outcome", string(outcome))
		return nil, outcomeErr
	}

	slog.Info("reservation confirmed",
		"reservation_id", id.String(),
		"date", booking.FormatDate(res.Date()),
		"start_time", res.Slot().Start,
		"booking_type", res.BookingType().String(),
		"guests", res.Guests())

	return &ReserveResult{ID: id}, nil
}
