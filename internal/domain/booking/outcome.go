package booking

// ReserveOutcome is the verdict of the store's atomic check-and-insert.
type ReserveOutcome string

const (
	OutcomeReserved          ReserveOutcome = "ok"
	OutcomeBlocked           ReserveOutcome = "blocked"
	OutcomePrivatelyBooked   ReserveOutcome = "private_booked"
	OutcomeHasSocialBookings ReserveOutcome = "social_booked"
	OutcomeCapacityExceeded  ReserveOutcome = "capacity"
)

// Err maps a rejecting outcome to its conflict error; nil for OutcomeReserved.
func (o ReserveOutcome) Err() error {
	switch o {
	case OutcomeReserved:
		return nil
	case OutcomeBlocked:
		return ErrSlotBlocked
	case OutcomePrivatelyBooked:
		return ErrSlotPrivatelyBooked
	case OutcomeHasSocialBookings:
		return ErrSlotHasSocialBookings
	case OutcomeCapacityExceeded:
		return ErrCapacityExceeded
	default:
		return ErrUnknownOutcome
	}
}
