//go:build unit

package booking_test

import (
	"testing"
	"time"

	"sauna-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlots(t *testing.T) {
	slots := booking.Slots()
	require.Len(t, slots, 6)
	assert.Equal(t, booking.SlotDefinition{Start: "09:00", End: "11:00"}, slots[0])
	assert.Equal(t, booking.SlotDefinition{Start: "19:00", End: "21:00"}, slots[5])

	t.Run("returned slice is a copy", func(t *testing.T) {
		slots[0].Start = "08:00"
		assert.Equal(t, "09:00", booking.Slots()[0].Start)
	})
}

func TestFindSlot(t *testing.T) {
	cases := []struct {
		start, end string
		ok         bool
	}{
		{"09:00", "11:00", true},
		{"19:00", "21:00", true},
		{"09:00", "13:00", false},
		{"10:00", "12:00", false},
		{"21:00", "23:00", false},
		{"09:00:00", "11:00:00", false},
	}
	for _, tc := range cases {
		t.Run(tc.start+"-"+tc.end, func(t *testing.T) {
			_, ok := booking.FindSlot(tc.start, tc.end)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2025-03-10", true},
		{"2024-02-29", true},
		{"2025-02-29", false},
		{"2025-13-01", false},
		{"2025-3-10", false},
		{"10/03/2025", false},
		{"2025-03-10T00:00:00Z", false},
		{"", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			d, err := booking.ParseDate(tc.in)
			if !tc.ok {
				assert.ErrorIs(t, err, booking.ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.in, booking.FormatDate(d))
			assert.Equal(t, time.UTC, d.Location())
		})
	}
}

func TestTimeHelpers(t *testing.T) {
	assert.True(t, booking.IsValidTime("09:00"))
	assert.True(t, booking.IsValidTime("23:59"))
	assert.False(t, booking.IsValidTime("24:00"))
	assert.False(t, booking.IsValidTime("9:00"))
	assert.False(t, booking.IsValidTime("09:00:00"))

	assert.Equal(t, "09:00", booking.NormalizeTime("09:00:00"))
	assert.Equal(t, "09:00", booking.NormalizeTime("09:00"))
}

func TestExpandDates(t *testing.T) {
	start := time.Date(2025, 2, 27, 0, 0, 0, 0, time.UTC)

	t.Run("crosses month end", func(t *testing.T) {
		dates := booking.ExpandDates(start, 3)
		require.Len(t, dates, 3)
		assert.Equal(t, "2025-03-01", booking.FormatDate(dates[2]))
	})

	t.Run("days clamped to [1, 31]", func(t *testing.T) {
		assert.Len(t, booking.ExpandDates(start, 0), 1)
		assert.Len(t, booking.ExpandDates(start, -5), 1)
		assert.Len(t, booking.ExpandDates(start, 31), 31)
		assert.Len(t, booking.ExpandDates(start, 400), 31)
	})
}

func TestToday(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	// 23:30 UTC during BST is already the next day in London.
	now := time.Date(2025, 7, 1, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-07-02", booking.FormatDate(booking.Today(now, london)))
}

func TestSlotStart(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	start, err := booking.SlotStart(date, "09:00", london)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC), start.UTC())
}
