package queries

import (
	"context"
	"time"

	"sauna-booking/internal/domain/booking"
	"sauna-booking/internal/pkg/clock"
)

type AvailabilityQueries interface {
	// Availability is the public single-day view; date must be valid.
	Availability(ctx context.Context, date string) (*AvailabilityResult, error)
	// Sessions is the admin range view; an invalid date falls back to today.
	Sessions(ctx context.Context, date string, days int) (*SessionsResult, error)
	Resolve(ctx context.Context, start time.Time, days int) ([]SlotView, error)
}

type SlotSnapshotStore interface {
	SnapshotRange(ctx context.Context, dates []time.Time) (*SlotSnapshot, error)
}

type availabilityQueriesImpl struct {
	store    SlotSnapshotStore
	clock    clock.Clock
	location *time.Location
}

func NewAvailabilityQueries(store SlotSnapshotStore, clock clock.Clock, location *time.Location) AvailabilityQueries {
	return &availabilityQueriesImpl{
		store:    store,
		clock:    clock,
		location: location,
	}
}

func (q *availabilityQueriesImpl) Availability(ctx context.Context, date string) (*AvailabilityResult, error) {
	day, err := booking.ParseDate(date)
	if err != nil {
		return nil, err
	}

	slots, err := q.Resolve(ctx, day, 1)
	if err != nil {
		return nil, err
	}

	return &AvailabilityResult{
		Date:  booking.FormatDate(day),
		Slots: slots,
	}, nil
}

func (q *availabilityQueriesImpl) Sessions(ctx context.Context, date string, days int) (*SessionsResult, error) {
	start := startOrToday(date, q.clock.Now(), q.location)
	days = booking.ClampDays(days)

	sessions, err := q.Resolve(ctx, start, days)
	if err != nil {
		return nil, err
	}

	return &SessionsResult{
		Date:     booking.FormatDate(start),
		Days:     days,
		Sessions: sessions,
	}, nil
}

func (q *availabilityQueriesImpl) Resolve(ctx context.Context, start time.Time, days int) ([]SlotView, error) {
	dates := booking.ExpandDates(start, days)

	snapshot, err := q.store.SnapshotRange(ctx, dates)
	if err != nil {
		return nil, err
	}

	views := booking.BuildSlotViews(dates, snapshot.Overrides, snapshot.Reservations)
	result := make([]SlotView, len(views))
	for i, v := range views {
		result[i] = toSlotView(v)
	}
	return result, nil
}

func startOrToday(date string, now time.Time, loc *time.Location) time.Time {
	if day, err := booking.ParseDate(date); err == nil {
		return day
	}
	return booking.Today(now, loc)
}
