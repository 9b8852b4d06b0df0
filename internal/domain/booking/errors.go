package booking

import "sauna-booking/internal/pkg/errs"

// Messages are shown to end users as-is.
var (
	ErrInvalidDate        = errs.Mark(errs.New("Invalid date"), errs.ErrValidation)
	ErrInvalidBookingTime = errs.Mark(errs.New("Invalid booking time"), errs.ErrValidation)
	ErrInvalidSlot        = errs.Mark(errs.New("Invalid slot selection"), errs.ErrValidation)
	ErrInvalidSlotData    = errs.Mark(errs.New("Invalid slot data"), errs.ErrValidation)
	ErrInvalidBookingType = errs.Mark(errs.New("Invalid booking type"), errs.ErrValidation)
	ErrInvalidGuestCount  = errs.Mark(errs.New("Invalid guest count"), errs.ErrValidation)
	ErrNameRequired       = errs.Mark(errs.New("Name is required"), errs.ErrValidation)
	ErrInvalidEmail       = errs.Mark(errs.New("Invalid email address"), errs.ErrValidation)
	ErrInvalidPhone       = errs.Mark(errs.New("Invalid phone number"), errs.ErrValidation)

	ErrTooSoon               = errs.Mark(errs.New("Slot is no longer bookable"), errs.ErrConflict)
	ErrSlotBlocked           = errs.Mark(errs.New("Slot is blocked"), errs.ErrConflict)
	ErrSlotPrivatelyBooked   = errs.Mark(errs.New("Slot already booked"), errs.ErrConflict)
	ErrSlotHasSocialBookings = errs.Mark(errs.New("Slot already has social bookings"), errs.ErrConflict)
	ErrCapacityExceeded      = errs.Mark(errs.New("Not enough spots available"), errs.ErrConflict)
)

var ErrUnknownOutcome = errs.New("unknown reserve outcome")
