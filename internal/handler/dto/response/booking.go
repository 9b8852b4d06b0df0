package response

import (
	"time"

	"sauna-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AvailabilitySlotResponse struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	CapacitySocial  int    `json:"capacity_social"`
	BookedSocial    int    `json:"booked_social"`
	AvailableSocial int    `json:"available_social"`
	HasPrivate      bool   `json:"has_private"`
	IsBlocked       bool   `json:"is_blocked"`
	Status          string `json:"status"`
}

type AvailabilityResponse struct {
	Date  string                     `json:"date"`
	Slots []AvailabilitySlotResponse `json:"slots"`
}

type SessionResponse struct {
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

type SessionsResponse struct {
	Date     string            `json:"date"`
	Days     int               `json:"days"`
	Sessions []SessionResponse `json:"sessions"`
}

type ReservationResponse struct {
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

type ReservationListResponse struct {
	Date         string                `json:"date"`
	Days         int                   `json:"days"`
	Reservations []ReservationResponse `json:"reservations"`
}

type ReserveResponse struct {
	Success bool      `json:"success"`
	ID      uuid.UUID `json:"id"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ClearSlotResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

func FromAvailabilityResult(rm *queries.AvailabilityResult) (*AvailabilityResponse, error) {
	resp := &AvailabilityResponse{Date: rm.Date, Slots: []AvailabilitySlotResponse{}}
	if len(rm.Slots) == 0 {
		return resp, nil
	}
	if err := copier.Copy(&resp.Slots, rm.Slots); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromSessionsResult(rm *queries.SessionsResult) (*SessionsResponse, error) {
	resp := &SessionsResponse{Date: rm.Date, Days: rm.Days, Sessions: []SessionResponse{}}
	if len(rm.Sessions) == 0 {
		return resp, nil
	}
	if err := copier.Copy(&resp.Sessions, rm.Sessions); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromReservationListResult(rm *queries.ReservationListResult) (*ReservationListResponse, error) {
	resp := &ReservationListResponse{Date: rm.Date, Days: rm.Days, Reservations: []ReservationResponse{}}
	if len(rm.Reservations) == 0 {
		return resp, nil
	}
	if err := copier.Copy(&resp.Reservations, rm.Reservations); err != nil {
		return nil, err
	}
	return resp, nil
}
