//go:build unit || e2e

package builder

import (
	"time"

	"sauna-booking/internal/domain/booking"
	reqdto "sauna-booking/internal/handler/dto/request"
	"sauna-booking/internal/pkg/ptr"
)

type ReservationBuilder struct {
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

// NewReservationBuilder returns a valid social booking for two guests on the
// given date in the 11:00 slot.
func NewReservationBuilder(date string) *ReservationBuilder {
	return &ReservationBuilder{
		Date:        date,
		StartTime:   "11:00",
		EndTime:     "13:00",
		BookingType: string(booking.BookingTypeSocial),
		Guests:      2,
		Name:        "Ada Guest",
		Email:       "ada@example.com",
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) Social(guests int) *ReservationBuilder {
	r.BookingType = string(booking.BookingTypeSocial)
	r.Guests = guests
	return r
}

func (r *ReservationBuilder) Private(guests int) *ReservationBuilder {
	r.BookingType = string(booking.BookingTypePrivate)
	r.Guests = guests
	return r
}

func (r *ReservationBuilder) Slot(start, end string) *ReservationBuilder {
	r.StartTime = start
	r.EndTime = end
	return r
}

func (r *ReservationBuilder) BuildRequestDTO() reqdto.ReserveRequest {
	return reqdto.ReserveRequest{
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		BookingType: r.BookingType,
		Guests:      reqdto.LooseInt{Value: ptr.Of(r.Guests)},
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Notes:       r.Notes,
	}
}

// BuildRequestMap is the JSON body the public site sends.
func (r *ReservationBuilder) BuildRequestMap() map[string]any {
	m := map[string]any{
		"date":         r.Date,
		"start_time":   r.StartTime,
		"end_time":     r.EndTime,
		"booking_type": r.BookingType,
		"guests":       r.Guests,
		"name":         r.Name,
		"email":        r.Email,
	}
	if r.Phone != nil {
		m["phone"] = *r.Phone
	}
	if r.Notes != nil {
		m["notes"] = *r.Notes
	}
	return m
}

func (r *ReservationBuilder) BuildDomain(now time.Time, loc *time.Location) (*booking.Reservation, error) {
	return booking.NewReservation(r.BuildRequestDTO().ToInput(), now, loc)
}
