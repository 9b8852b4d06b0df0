package commands

import "sauna-booking/internal/pkg/errs"

var (
	ErrDatabaseOperationFailed = errs.New("database operation failed")
	ErrMissingReservationID    = errs.Mark(errs.New("Missing reservation_id"), errs.ErrValidation)
	ErrInvalidReservationID    = errs.Mark(errs.New("Invalid reservation_id format"), errs.ErrValidation)
	ErrReservationNotFound     = errs.Mark(errs.New("Reservation not found"), errs.ErrNotFound)
)
