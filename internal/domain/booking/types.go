package booking

type BookingType string

const (
	BookingTypeSocial  BookingType = "social"
	BookingTypePrivate BookingType = "private"
)

func ParseBookingType(s string) (BookingType, error) {
	switch BookingType(s) {
	case BookingTypeSocial, BookingTypePrivate:
		return BookingType(s), nil
	default:
		return "", ErrInvalidBookingType
	}
}

func (t BookingType) String() string {
	return string(t)
}

type SlotStatus string

const (
	SlotStatusOpen    SlotStatus = "open"
	SlotStatusFull    SlotStatus = "full"
	SlotStatusPrivate SlotStatus = "private"
	SlotStatusBlocked SlotStatus = "blocked"
)

type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "confirmed"
)
