package booking

import "time"

const (
	DefaultSocialCapacity = 12
	SocialMaxGuests       = 12
	PrivateMaxGuests      = 14
	MinAdvance            = 18 * time.Hour

	// MaxRangeDays bounds range reads so one request cannot scan the whole table.
	MaxRangeDays = 31
)

// SlotDefinition is one fixed two-hour window, identical on every day.
type SlotDefinition struct {
	Start string
	End   string
}

var slotDefinitions = [...]SlotDefinition{
	{Start: "09:00", End: "11:00"},
	{Start: "11:00", End: "13:00"},
	{Start: "13:00", End: "15:00"},
	{Start: "15:00", End: "17:00"},
	{Start: "17:00", End: "19:00"},
	{Start: "19:00", End: "21:00"},
}

// Slots returns the daily grid in start order. The slice is a fresh copy.
func Slots() []SlotDefinition {
	out := make([]SlotDefinition, len(slotDefinitions))
	copy(out, slotDefinitions[:])
	return out
}

// FindSlot reports the definition whose start and end both match exactly.
func FindSlot(start, end string) (SlotDefinition, bool) {
	for _, s := range slotDefinitions {
		if s.Start == start && s.End == end {
			return s, true
		}
	}
	return SlotDefinition{}, false
}

func MaxGuests(t BookingType) int {
	if t == BookingTypePrivate {
		return PrivateMaxGuests
	}
	return SocialMaxGuests
}
