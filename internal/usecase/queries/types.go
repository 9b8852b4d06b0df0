package queries

import (
	"time"

	"sauna-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// SlotSnapshot is the raw state of a date range read from one snapshot.
type SlotSnapshot struct {
	Overrides    []booking.SlotOverride
	Reservations []booking.ReservationSummary
}

// SlotView is the derived state of one slot on one day.
type SlotView struct {
	Date            string `json:"date"`
	Start           string `json:"start"`
	End             string `json:"end"`
	CapacitySocial  int    `json:"capacity_social"`
	BookedSocial    int    `json:"booked_social"`
	AvailableSocial int    `json:"available_social"`
	HasPrivate      bool   `json:"has_private"`
	IsBlocked       bool   `json:"is_blocked"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`
}

type AvailabilityResult struct {
	Date  string
	Slots []SlotView
}

type SessionsResult struct {
	Date     string
	Days     int
	Sessions []SlotView
}

type ReservationView struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	BookingType string    `json:"booking_type"`
	Guests      int       `json:"guests"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReservationListResult struct {
	Date         string
	Days         int
	Reservations []*ReservationView
}

func toSlotView(v booking.SlotView) SlotView {
	return SlotView{
		Date:            booking.FormatDate(v.Date),
		Start:           v.Start,
		End:             v.End,
		CapacitySocial:  v.CapacitySocial,
		BookedSocial:    v.BookedSocial,
		AvailableSocial: v.AvailableSocial,
		HasPrivate:      v.HasPrivate,
		IsBlocked:       v.IsBlocked,
		Status:          string(v.Status),
		Notes:           v.Notes,
	}
}
