//go:build unit || e2e

// Package fakestore is an in-memory stand-in for the PostgreSQL store. Reserve
// applies the admission rule of reserve_booking_slot under one mutex, so
// concurrent tests observe the same serialization per slot.
package fakestore

import (
	"context"
	"slices"
	"sync"
	"time"

	"sauna-booking/internal/domain/booking"
	"sauna-booking/internal/infra"
	"sauna-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type Store struct {
	mu           sync.Mutex
	overrides    map[booking.SlotKey]booking.SlotOverride
	reservations []*booking.Reservation
	failWith     error
	reserveCalls int
}

func New() *Store {
	return &Store{
		overrides: make(map[booking.SlotKey]booking.SlotOverride),
	}
}

// FailWith makes every following store call return err until cleared with nil.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

func (s *Store) ReserveCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reserveCalls
}

func (s *Store) Reserve(_ context.Context, res *booking.Reservation, _ int) (uuid.UUID, booking.ReserveOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reserveCalls++
	if s.failWith != nil {
		return uuid.Nil, "", infra.WrapRepoErr("failed to reserve booking slot", s.failWith)
	}

	key := res.Key()
	var override *booking.SlotOverride
	if o, ok := s.overrides[key]; ok {
		override = &o
	}
	var stats booking.SlotStats
	for _, r := range s.reservations {
		if r.Key() == key {
			stats.Add(r.BookingType(), r.Guests())
		}
	}

	outcome := admit(override, stats, res.BookingType(), res.Guests())
	if outcome != booking.OutcomeReserved {
		return uuid.Nil, outcome, nil
	}
	s.reservations = append(s.reservations, res)
	return res.ID(), outcome, nil
}

func (s *Store) DeleteBySlot(_ context.Context, date time.Time, startTime string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return 0, infra.WrapRepoErr("failed to delete reservations by slot", s.failWith)
	}

	key := booking.NewSlotKey(date, startTime)
	before := len(s.reservations)
	s.reservations = slices.DeleteFunc(s.reservations, func(r *booking.Reservation) bool {
		return r.Key() == key
	})
	return int64(before - len(s.reservations)), nil
}

func (s *Store) DeleteByID(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return infra.WrapRepoErr("failed to delete reservation", s.failWith)
	}

	before := len(s.reservations)
	s.reservations = slices.DeleteFunc(s.reservations, func(r *booking.Reservation) bool {
		return r.ID() == id
	})
	if len(s.reservations) == before {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (s *Store) Upsert(_ context.Context, o booking.SlotOverride) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return infra.WrapRepoErr("failed to upsert slot override", s.failWith)
	}
	s.overrides[o.Key()] = o
	return nil
}

func (s *Store) UpsertDay(_ context.Context, overrides []booking.SlotOverride, reset bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return infra.WrapRepoErr("failed to upsert day slots", s.failWith)
	}
	for _, o := range overrides {
		if existing, ok := s.overrides[o.Key()]; ok && !reset {
			o.CapacitySocial = existing.CapacitySocial
			o.Notes = existing.Notes
		}
		s.overrides[o.Key()] = o
	}
	return nil
}

func (s *Store) SnapshotRange(_ context.Context, dates []time.Time) (*queries.SlotSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, infra.WrapRepoErr("failed to list slot overrides", s.failWith)
	}

	snapshot := &queries.SlotSnapshot{}
	for _, o := range s.overrides {
		if containsDate(dates, o.Date) {
			snapshot.Overrides = append(snapshot.Overrides, o)
		}
	}
	for _, r := range s.reservations {
		if containsDate(dates, r.Date()) {
			snapshot.Reservations = append(snapshot.Reservations, booking.ReservationSummary{
				ID:          r.ID(),
				Date:        r.Date(),
				StartTime:   r.Slot().Start,
				BookingType: r.BookingType(),
				Guests:      r.Guests(),
			})
		}
	}
	return snapshot, nil
}

func (s *Store) ListByDates(_ context.Context, dates []time.Time) ([]*queries.ReservationView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", s.failWith)
	}

	var rows []*booking.Reservation
	for _, r := range s.reservations {
		if containsDate(dates, r.Date()) {
			rows = append(rows, r)
		}
	}
	slices.SortStableFunc(rows, func(a, b *booking.Reservation) int {
		if c := a.Date().Compare(b.Date()); c != 0 {
			return c
		}
		if a.Slot().Start != b.Slot().Start {
			if a.Slot().Start < b.Slot().Start {
				return -1
			}
			return 1
		}
		return a.CreatedAt().Compare(b.CreatedAt())
	})

	out := make([]*queries.ReservationView, len(rows))
	for i, r := range rows {
		out[i] = &queries.ReservationView{
			ID:          r.ID(),
			Date:        booking.FormatDate(r.Date()),
			StartTime:   r.Slot().Start,
			EndTime:     r.Slot().End,
			BookingType: r.BookingType().String(),
			Guests:      r.Guests(),
			Name:        r.Name(),
			Email:       r.Email(),
			Phone:       r.Phone(),
			Notes:       r.Notes(),
			Status:      string(r.Status()),
			CreatedAt:   r.CreatedAt(),
		}
	}
	return out, nil
}

// Override returns the stored override at key, if any.
func (s *Store) Override(date time.Time, start string) (booking.SlotOverride, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.overrides[booking.NewSlotKey(date, start)]
	return o, ok
}

// admit mirrors reserve_booking_slot in migrations/001_initial_schema.sql:
// blocked first, then an existing private booking, then the private/social
// exclusion and finally social capacity.
func admit(override *booking.SlotOverride, stats booking.SlotStats, t booking.BookingType, guests int) booking.ReserveOutcome {
	capacity := booking.DefaultSocialCapacity
	if override != nil {
		if override.IsBlocked {
			return booking.OutcomeBlocked
		}
		capacity = override.CapacitySocial
	}
	if stats.HasPrivate {
		return booking.OutcomePrivatelyBooked
	}
	if t == booking.BookingTypePrivate && stats.BookedSocial > 0 {
		return booking.OutcomeHasSocialBookings
	}
	if t == booking.BookingTypeSocial && stats.BookedSocial+guests > capacity {
		return booking.OutcomeCapacityExceeded
	}
	return booking.OutcomeReserved
}

func containsDate(dates []time.Time, d time.Time) bool {
	return slices.ContainsFunc(dates, func(x time.Time) bool { return x.Equal(d) })
}
