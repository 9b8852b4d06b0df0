//go:build unit

package booking_test

import (
	"testing"
	"time"

	"sauna-booking/internal/domain/booking"
	"sauna-booking/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	day        = time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)
	morning    = booking.SlotDefinition{Start: "09:00", End: "11:00"}
	ignoreDate = cmpopts.IgnoreFields(booking.SlotView{}, "Date")
)

func TestDeriveSlotView(t *testing.T) {
	cases := []struct {
		name     string
		override *booking.SlotOverride
		stats    booking.SlotStats
		want     booking.SlotView
	}{
		{
			name: "no override, no reservations",
			want: booking.SlotView{Start: "09:00", End: "11:00", CapacitySocial: 12, AvailableSocial: 12, Status: booking.SlotStatusOpen},
		},
		{
			name:  "partly booked",
			stats: booking.SlotStats{BookedSocial: 5},
			want:  booking.SlotView{Start: "09:00", End: "11:00", CapacitySocial: 12, BookedSocial: 5, AvailableSocial: 7, Status: booking.SlotStatusOpen},
		},
		{
			name:  "exactly full",
			stats: booking.SlotStats{BookedSocial: 12},
			want:  booking.SlotView{Start: "09:00", End: "11:00", CapacitySocial: 12, BookedSocial: 12, Status: booking.SlotStatusFull},
		},
		{
			name:     "capacity lowered below bookings",
			override: &booking.SlotOverride{CapacitySocial: 4},
			stats:    booking.SlotStats{BookedSocial: 6},
			want:     booking.SlotView{Start: "09:00", End: "11:00", CapacitySocial: 4, BookedSocial: 6, Status: booking.SlotStatusFull},
		},
		{
			name:     "zero capacity is full",
			override: &booking.SlotOverride{CapacitySocial: 0},
			want:     booking.SlotView{Start: "09:00", End: "11:00", Status: booking.SlotStatusFull},
		},
		{
			name:  "private booking",
			stats: booking.SlotStats{HasPrivate: true},
			want:  booking.SlotView{Start: "09:00", End: "11:00", CapacitySocial: 12, HasPrivate: true, Status: booking.SlotStatusPrivate},
		},
		{
			name:     "blocked wins over private and full",
			override: &booking.SlotOverride{CapacitySocial: 2, IsBlocked: true, Notes: ptr.Of("Closed for cleaning")},
			stats:    booking.SlotStats{BookedSocial: 2, HasPrivate: true},
			want: booking.SlotView{
				Start: "09:00", End: "11:00", CapacitySocial: 2, BookedSocial: 2, HasPrivate: true,
				IsBlocked: true, Status: booking.SlotStatusBlocked, Notes: "Closed for cleaning",
			},
		},
		{
			name:     "private wins over full",
			override: &booking.SlotOverride{CapacitySocial: 0},
			stats:    booking.SlotStats{HasPrivate: true},
			want:     booking.SlotView{Start: "09:00", End: "11:00", HasPrivate: true, Status: booking.SlotStatusPrivate},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := booking.DeriveSlotView(day, morning, tc.override, tc.stats)
			if diff := cmp.Diff(tc.want, got, ignoreDate); diff != "" {
				t.Errorf("DeriveSlotView() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, day, got.Date)
		})
	}
}

func TestSlotStats_Add(t *testing.T) {
	var st booking.SlotStats
	st.Add(booking.BookingTypeSocial, 3)
	st.Add(booking.BookingTypeSocial, 0)
	assert.Equal(t, 4, st.BookedSocial, "a stored zero counts as one guest")
	assert.False(t, st.HasPrivate)

	st.Add(booking.BookingTypePrivate, 10)
	assert.True(t, st.HasPrivate)
	assert.Equal(t, 4, st.BookedSocial, "private guests never count toward social capacity")
}

func TestBuildSlotViews(t *testing.T) {
	dates := booking.ExpandDates(day, 2)
	next := dates[1]

	overrides := []booking.SlotOverride{
		{Date: day, StartTime: "13:00", EndTime: "15:00", CapacitySocial: 12, IsBlocked: true},
		{Date: next, StartTime: "09:00", EndTime: "11:00", CapacitySocial: 6},
	}
	reservations := []booking.ReservationSummary{
		{ID: uuid.New(), Date: day, StartTime: "09:00", BookingType: booking.BookingTypeSocial, Guests: 5},
		{ID: uuid.New(), Date: day, StartTime: "09:00", BookingType: booking.BookingTypeSocial, Guests: 2},
		{ID: uuid.New(), Date: day, StartTime: "11:00:00", BookingType: booking.BookingTypePrivate, Guests: 8},
		{ID: uuid.New(), Date: next, StartTime: "09:00", BookingType: booking.BookingTypeSocial, Guests: 6},
	}

	views := booking.BuildSlotViews(dates, overrides, reservations)
	require.Len(t, views, 12)

	type summary struct {
		Key       booking.SlotKey
		Status    booking.SlotStatus
		Booked    int
		Available int
	}
	got := make([]summary, len(views))
	for i, v := range views {
		got[i] = summary{booking.NewSlotKey(v.Date, v.Start), v.Status, v.BookedSocial, v.AvailableSocial}
	}

	want := []summary{
		{"2025-06-06|09:00", booking.SlotStatusOpen, 7, 5},
		{"2025-06-06|11:00", booking.SlotStatusPrivate, 0, 0},
		{"2025-06-06|13:00", booking.SlotStatusBlocked, 0, 0},
		{"2025-06-06|15:00", booking.SlotStatusOpen, 0, 12},
		{"2025-06-06|17:00", booking.SlotStatusOpen, 0, 12},
		{"2025-06-06|19:00", booking.SlotStatusOpen, 0, 12},
		{"2025-06-07|09:00", booking.SlotStatusFull, 6, 0},
		{"2025-06-07|11:00", booking.SlotStatusOpen, 0, 12},
		{"2025-06-07|13:00", booking.SlotStatusOpen, 0, 12},
		{"2025-06-07|15:00", booking.SlotStatusOpen, 0, 12},
		{"2025-06-07|17:00", booking.SlotStatusOpen, 0, 12},
		{"2025-06-07|19:00", booking.SlotStatusOpen, 0, 12},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildSlotViews() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSlotViews_Idempotent(t *testing.T) {
	dates := booking.ExpandDates(day, 3)
	overrides := []booking.SlotOverride{{Date: day, StartTime: "17:00", EndTime: "19:00", CapacitySocial: 3}}
	reservations := []booking.ReservationSummary{{Date: day, StartTime: "17:00", BookingType: booking.BookingTypeSocial, Guests: 3}}

	first := booking.BuildSlotViews(dates, overrides, reservations)
	second := booking.BuildSlotViews(dates, overrides, reservations)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated resolve differs (-first +second):\n%s", diff)
	}
}
