package request

import (
	"sauna-booking/internal/domain/booking"
	"sauna-booking/internal/pkg/errs"
)

var ErrInvalidAction = errs.Mark(errs.New("Invalid action"), errs.ErrValidation)

type ReserveRequest struct {
	Date        string   `json:"date" binding:"required"`
	StartTime   string   `json:"start_time" binding:"required"`
	EndTime     string   `json:"end_time" binding:"required"`
	BookingType string   `json:"booking_type"`
	Guests      LooseInt `json:"guests" swaggertype:"integer"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       *string  `json:"phone,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}

// RequiredFieldError answers a missing date or time the way NewReservation does.
func (ReserveRequest) RequiredFieldError(string) error {
	return booking.ErrInvalidBookingTime
}

// ToInput defaults a missing guest count to one; an unparsable one becomes
// zero and fails guest validation.
func (r ReserveRequest) ToInput() booking.ReservationInput {
	guests := r.Guests.Or(1)
	if r.Guests.Invalid {
		guests = 0
	}
	return booking.ReservationInput{
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		BookingType: r.BookingType,
		Guests:      guests,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Notes:       r.Notes,
	}
}

type UpdateSlotRequest struct {
	Date           string   `json:"date" binding:"required"`
	StartTime      string   `json:"start_time" binding:"required"`
	EndTime        string   `json:"end_time" binding:"required"`
	CapacitySocial LooseInt `json:"capacity_social" swaggertype:"integer"`
	IsBlocked      bool     `json:"is_blocked"`
	Notes          *string  `json:"notes,omitempty"`
}

func (UpdateSlotRequest) RequiredFieldError(field string) error {
	return slotFieldError(field)
}

func (r UpdateSlotRequest) ToInput() booking.SlotOverrideInput {
	return booking.SlotOverrideInput{
		Date:           r.Date,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		CapacitySocial: r.CapacitySocial.Value,
		IsBlocked:      r.IsBlocked,
		Notes:          r.Notes,
	}
}

type ClearSlotRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
}

func (ClearSlotRequest) RequiredFieldError(field string) error {
	return slotFieldError(field)
}

type DayRequest struct {
	Date string `json:"date" binding:"required"`
}

func (DayRequest) RequiredFieldError(string) error {
	return booking.ErrInvalidDate
}

// AdminActionRequest is the single-endpoint form used by the ops panel.
// Only the fields relevant to Action are read.
type AdminActionRequest struct {
	Action         string   `json:"action" binding:"required"`
	Date           string   `json:"date"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	CapacitySocial LooseInt `json:"capacity_social" swaggertype:"integer"`
	IsBlocked      bool     `json:"is_blocked"`
	Notes          *string  `json:"notes,omitempty"`
	ReservationID  string   `json:"reservation_id"`
}

func (AdminActionRequest) RequiredFieldError(string) error {
	return ErrInvalidAction
}

func (r AdminActionRequest) UpdateSlot() UpdateSlotRequest {
	return UpdateSlotRequest{
		Date:           r.Date,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		CapacitySocial: r.CapacitySocial,
		IsBlocked:      r.IsBlocked,
		Notes:          r.Notes,
	}
}

func slotFieldError(field string) error {
	if field == "Date" {
		return booking.ErrInvalidDate
	}
	return booking.ErrInvalidSlotData
}
