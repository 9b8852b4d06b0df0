package booking

import (
	"math"
	"strings"
	"time"
)

// SlotOverride is an admin-set deviation from the default capacity or an
// explicit block for one (date, start) key.
type SlotOverride struct {
	Date           time.Time
	StartTime      string
	EndTime        string
	CapacitySocial int
	IsBlocked      bool
	Notes          *string
	UpdatedAt      time.Time
}

func (o SlotOverride) Key() SlotKey {
	return NewSlotKey(o.Date, o.StartTime)
}

// SlotOverrideInput mirrors the admin panel's update form. Capacity is nil
// when the field was absent or not a number.
type SlotOverrideInput struct {
	Date           string
	StartTime      string
	EndTime        string
	CapacitySocial *int
	IsBlocked      bool
	Notes          *string
}

func NewSlotOverride(in SlotOverrideInput, now time.Time) (SlotOverride, error) {
	date, err := ParseDate(in.Date)
	if err != nil {
		return SlotOverride{}, err
	}
	start := NormalizeTime(strings.TrimSpace(in.StartTime))
	end := NormalizeTime(strings.TrimSpace(in.EndTime))
	if !IsValidTime(start) || !IsValidTime(end) {
		return SlotOverride{}, ErrInvalidSlotData
	}
	return SlotOverride{
		Date:           date,
		StartTime:      start,
		EndTime:        end,
		CapacitySocial: CoerceCapacity(in.CapacitySocial),
		IsBlocked:      in.IsBlocked,
		Notes:          trimmedOrNil(in.Notes, maxNotesLength),
		UpdatedAt:      now,
	}, nil
}

// CoerceCapacity falls back to the default for missing, negative or
// out-of-range values. The stored column is a 32-bit integer.
func CoerceCapacity(c *int) int {
	if c == nil || *c < 0 || *c > math.MaxInt32 {
		return DefaultSocialCapacity
	}
	return *c
}

// DayOverrides builds one override per slot definition for a whole-day
// block, unblock or reset. Default capacity applies to slots without a row
// and to every slot on reset.
func DayOverrides(date time.Time, blocked bool, now time.Time) []SlotOverride {
	out := make([]SlotOverride, 0, len(slotDefinitions))
	for _, s := range slotDefinitions {
		out = append(out, SlotOverride{
			Date:           date,
			StartTime:      s.Start,
			EndTime:        s.End,
			CapacitySocial: DefaultSocialCapacity,
			IsBlocked:      blocked,
			UpdatedAt:      now,
		})
	}
	return out
}
