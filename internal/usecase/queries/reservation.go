package queries

import (
	"context"
	"time"

	"sauna-booking/internal/domain/booking"
	"sauna-booking/internal/pkg/clock"
)

type ReservationQueries interface {
	ListReservations(ctx context.Context, date string, days int) (*ReservationListResult, error)
}

type ReservationViewRepo interface {
	ListByDates(ctx context.Context, dates []time.Time) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo     ReservationViewRepo
	clock    clock.Clock
	location *time.Location
}

func NewReservationQueries(repo ReservationViewRepo, clock clock.Clock, location *time.Location) ReservationQueries {
	return &reservationQueriesImpl{
		repo:     repo,
		clock:    clock,
		location: location,
	}
}

func (q *reservationQueriesImpl) ListReservations(ctx context.Context, date string, days int) (*ReservationListResult, error) {
	start := startOrToday(date, q.clock.Now(), q.location)
	days = booking.ClampDays(days)

	rows, err := q.repo.ListByDates(ctx, booking.ExpandDates(start, days))
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*ReservationView{}
	}

	return &ReservationListResult{
		Date:         booking.FormatDate(start),
		Days:         days,
		Reservations: rows,
	}, nil
}
