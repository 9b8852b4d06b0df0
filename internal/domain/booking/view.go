package booking

import (
	"time"

	"github.com/google/uuid"
)

// SlotKey identifies one slot on one day: "YYYY-MM-DD|HH:MM".
type SlotKey string

func NewSlotKey(date time.Time, start string) SlotKey {
	return SlotKey(FormatDate(date) + "|" + NormalizeTime(start))
}

// ReservationSummary is the slice of a reservation the resolver needs.
type ReservationSummary struct {
	ID          uuid.UUID
	Date        time.Time
	StartTime   string
	BookingType BookingType
	Guests      int
}

func (r ReservationSummary) Key() SlotKey {
	return NewSlotKey(r.Date, r.StartTime)
}

type SlotStats struct {
	BookedSocial int
	HasPrivate   bool
}

func (s *SlotStats) Add(t BookingType, guests int) {
	if t == BookingTypePrivate {
		s.HasPrivate = true
		return
	}
	if guests < 1 {
		guests = 1
	}
	s.BookedSocial += guests
}

type SlotView struct {
	Date            time.Time
	Start           string
	End             string
	CapacitySocial  int
	BookedSocial    int
	AvailableSocial int
	HasPrivate      bool
	IsBlocked       bool
	Status          SlotStatus
	Notes           string
}

// DeriveSlotView combines an override (nil means defaults) with the
// reservation stats at the same key. Precedence: blocked, private, full, open.
func DeriveSlotView(date time.Time, slot SlotDefinition, override *SlotOverride, stats SlotStats) SlotView {
	capacity := DefaultSocialCapacity
	blocked := false
	notes := ""
	if override != nil {
		capacity = override.CapacitySocial
		blocked = override.IsBlocked
		if override.Notes != nil {
			notes = *override.Notes
		}
	}

	status := SlotStatusOpen
	switch {
	case blocked:
		status = SlotStatusBlocked
	case stats.HasPrivate:
		status = SlotStatusPrivate
	case stats.BookedSocial >= capacity:
		status = SlotStatusFull
	}

	available := 0
	if status == SlotStatusOpen {
		available = max(capacity-stats.BookedSocial, 0)
	}

	return SlotView{
		Date:            date,
		Start:           slot.Start,
		End:             slot.End,
		CapacitySocial:  capacity,
		BookedSocial:    stats.BookedSocial,
		AvailableSocial: available,
		HasPrivate:      stats.HasPrivate,
		IsBlocked:       blocked,
		Status:          status,
		Notes:           notes,
	}
}

// BuildSlotViews resolves every (date, slot) pair of the range, dates outer
// and slots inner, from one bulk read of each collection.
func BuildSlotViews(dates []time.Time, overrides []SlotOverride, reservations []ReservationSummary) []SlotView {
	overrideByKey := make(map[SlotKey]*SlotOverride, len(overrides))
	for i := range overrides {
		overrideByKey[overrides[i].Key()] = &overrides[i]
	}

	statsByKey := make(map[SlotKey]*SlotStats)
	for _, r := range reservations {
		key := r.Key()
		st, ok := statsByKey[key]
		if !ok {
			st = &SlotStats{}
			statsByKey[key] = st
		}
		st.Add(r.BookingType, r.Guests)
	}

	views := make([]SlotView, 0, len(dates)*len(slotDefinitions))
	for _, day := range dates {
		for _, slot := range slotDefinitions {
			key := NewSlotKey(day, slot.Start)
			var stats SlotStats
			if st, ok := statsByKey[key]; ok {
				stats = *st
			}
			views = append(views, DeriveSlotView(day, slot, overrideByKey[key], stats))
		}
	}
	return views
}
