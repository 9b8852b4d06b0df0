package booking

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	maxNameLength  = 200
	maxNotesLength = 1000
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

var (
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneStripper    = regexp.MustCompile(`[^\d+\-() ]`)
	nonDigitStripper = regexp.MustCompile(`\D`)
)

// ReservationInput is the raw request as received from the public site.
type ReservationInput struct {
	Date        string
	StartTime   string
	EndTime     string
	BookingType string
	Guests      int
	Name        string
	Email       string
	Phone       *string
	Notes       *string
}

type Reservation struct {
	id          uuid.UUID
	date        time.Time
	slot        SlotDefinition
	bookingType BookingType
	guests      int
	name        string
	email       string
	phone       *string
	notes       *string
	status      ReservationStatus
	createdAt   time.Time
}

// NewReservation validates a request against everything that can be decided
// without the store: shape of every field, slot membership and the advance
// booking window measured on the wall clock of loc.
func NewReservation(in ReservationInput, now time.Time, loc *time.Location) (*Reservation, error) {
	date, err := ParseDate(in.Date)
	if err != nil || !IsValidTime(in.StartTime) || !IsValidTime(in.EndTime) {
		return nil, ErrInvalidBookingTime
	}

	slot, ok := FindSlot(in.StartTime, in.EndTime)
	if !ok {
		return nil, ErrInvalidSlot
	}

	bookingType, err := ParseBookingType(in.BookingType)
	if err != nil {
		return nil, err
	}

	start, err := SlotStart(date, slot.Start, loc)
	if err != nil {
		return nil, err
	}
	if start.Before(now.Add(MinAdvance)) {
		return nil, ErrTooSoon
	}

	if in.Guests < 1 || in.Guests > MaxGuests(bookingType) {
		return nil, ErrInvalidGuestCount
	}

	name := truncate(strings.TrimSpace(in.Name), maxNameLength)
	if name == "" {
		return nil, ErrNameRequired
	}

	email := strings.TrimSpace(in.Email)
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	phone, err := sanitizePhone(in.Phone)
	if err != nil {
		return nil, err
	}

	return &Reservation{
		id:          uuid.New(),
		date:        date,
		slot:        slot,
		bookingType: bookingType,
		guests:      in.Guests,
		name:        name,
		email:       email,
		phone:       phone,
		notes:       trimmedOrNil(in.Notes, maxNotesLength),
		status:      ReservationStatusConfirmed,
		createdAt:   now,
	}, nil
}

func (r *Reservation) ID() uuid.UUID             { return r.id }
func (r *Reservation) Date() time.Time           { return r.date }
func (r *Reservation) Slot() SlotDefinition      { return r.slot }
func (r *Reservation) BookingType() BookingType  { return r.bookingType }
func (r *Reservation) Guests() int               { return r.guests }
func (r *Reservation) Name() string              { return r.name }
func (r *Reservation) Email() string             { return r.email }
func (r *Reservation) Phone() *string            { return r.phone }
func (r *Reservation) Notes() *string            { return r.notes }
func (r *Reservation) Status() ReservationStatus { return r.status }
func (r *Reservation) CreatedAt() time.Time      { return r.createdAt }
func (r *Reservation) IsPrivate() bool           { return r.bookingType == BookingTypePrivate }
func (r *Reservation) Key() SlotKey              { return NewSlotKey(r.date, r.slot.Start) }

func sanitizePhone(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	phone := strings.TrimSpace(phoneStripper.ReplaceAllString(*raw, ""))
	if phone == "" {
		return nil, nil
	}
	digits := len(nonDigitStripper.ReplaceAllString(phone, ""))
	if digits < minPhoneDigits || digits > maxPhoneDigits {
		return nil, ErrInvalidPhone
	}
	return &phone, nil
}

func trimmedOrNil(s *string, limit int) *string {
	if s == nil {
		return nil
	}
	v := truncate(strings.TrimSpace(*s), limit)
	if v == "" {
		return nil
	}
	return &v
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) > limit {
		return string(r[:limit])
	}
	return s
}
