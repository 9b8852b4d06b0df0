//go:build unit

package commands_test

import (
	"errors"
	"time"

	"sauna-booking/internal/domain/booking"
	"sauna-booking/internal/pkg/errs"
	"sauna-booking/internal/usecase/commands"
	"sauna-booking/tests/common/builder"

	"github.com/google/uuid"
)

func (s *BookingFlowTestSuite) TestUpdateSlot() {
	s.Run("writes capacity and notes", func() {
		notes := "Sauna master session"
		s.Require().NoError(s.admin.UpdateSlot(s.ctx, booking.SlotOverrideInput{
			Date: slotDate, StartTime: "13:00:00", EndTime: "15:00:00", CapacitySocial: ptrInt(8), Notes: &notes,
		}))

		o, ok := s.store.Override(mustDate(slotDate), "13:00")
		s.Require().True(ok)
		s.Equal(8, o.CapacitySocial)
		s.Equal("15:00", o.EndTime)

		v := s.slot(slotDate, "13:00")
		s.Equal(8, v.CapacitySocial)
		s.Equal(8, v.AvailableSocial)
		s.Equal(notes, v.Notes)
	})

	s.Run("absent capacity falls back to default", func() {
		s.Require().NoError(s.admin.UpdateSlot(s.ctx, booking.SlotOverrideInput{
			Date: slotDate, StartTime: "15:00", EndTime: "17:00",
		}))
		s.Equal(booking.DefaultSocialCapacity, s.slot(slotDate, "15:00").CapacitySocial)
	})

	s.Run("malformed times are rejected", func() {
		err := s.admin.UpdateSlot(s.ctx, booking.SlotOverrideInput{Date: slotDate, StartTime: "3pm", EndTime: "5pm"})
		s.ErrorIs(err, booking.ErrInvalidSlotData)
	})

	s.Run("store failure is marked", func() {
		s.store.FailWith(errors.New("connection refused"))
		defer s.store.FailWith(nil)

		err := s.admin.UpdateSlot(s.ctx, booking.SlotOverrideInput{Date: slotDate, StartTime: "09:00", EndTime: "11:00"})
		s.True(errs.Is(err, commands.ErrDatabaseOperationFailed))
	})
}

func (s *BookingFlowTestSuite) TestClearSlot() {
	for range 3 {
		_, err := s.reserve(morningSlot(slotDate).Social(2))
		s.Require().NoError(err)
	}
	_, err := s.reserve(builder.NewReservationBuilder(slotDate).Social(2))
	s.Require().NoError(err)

	deleted, err := s.admin.ClearSlot(s.ctx, slotDate, "09:00:00")
	s.Require().NoError(err)
	s.Equal(int64(3), deleted)
	s.Equal(2, s.slot(slotDate, "11:00").BookedSocial, "other slots are untouched")

	deleted, err = s.admin.ClearSlot(s.ctx, slotDate, "09:00")
	s.Require().NoError(err)
	s.Equal(int64(0), deleted)

	_, err = s.admin.ClearSlot(s.ctx, "tomorrow", "09:00")
	s.ErrorIs(err, booking.ErrInvalidDate)
	_, err = s.admin.ClearSlot(s.ctx, slotDate, "")
	s.ErrorIs(err, booking.ErrInvalidSlotData)
}

func (s *BookingFlowTestSuite) TestResetDay() {
	notes := "Closed for private event"
	s.Require().NoError(s.admin.UpdateSlot(s.ctx, booking.SlotOverrideInput{
		Date: slotDate, StartTime: "09:00", EndTime: "11:00", CapacitySocial: ptrInt(3), IsBlocked: true, Notes: &notes,
	}))

	s.Require().NoError(s.admin.BlockDay(s.ctx, slotDate))
	v := s.slot(slotDate, "09:00")
	s.Equal("blocked", v.Status)
	s.Equal(notes, v.Notes, "block keeps notes")
	s.Equal(3, v.CapacitySocial, "block keeps capacity")

	s.Require().NoError(s.admin.ResetDay(s.ctx, slotDate))
	v = s.slot(slotDate, "09:00")
	s.Equal("open", v.Status)
	s.Equal("", v.Notes)
	s.Equal(booking.DefaultSocialCapacity, v.CapacitySocial)
	s.Equal(booking.DefaultSocialCapacity, v.AvailableSocial)

	s.ErrorIs(s.admin.BlockDay(s.ctx, "2025-6-6"), booking.ErrInvalidDate)
}

func (s *BookingFlowTestSuite) TestBlockUnblockDay_KeepsCapacityAndBookings() {
	s.Require().NoError(s.admin.UpdateSlot(s.ctx, booking.SlotOverrideInput{
		Date: slotDate, StartTime: "09:00", EndTime: "11:00", CapacitySocial: ptrInt(4),
	}))
	_, err := s.reserve(morningSlot(slotDate).Social(4))
	s.Require().NoError(err)
	before := s.slot(slotDate, "09:00")
	s.Require().Equal("full", before.Status)

	s.Require().NoError(s.admin.BlockDay(s.ctx, slotDate))
	blocked := s.slot(slotDate, "09:00")
	s.Equal("blocked", blocked.Status)
	s.Equal(4, blocked.CapacitySocial)

	s.Require().NoError(s.admin.UnblockDay(s.ctx, slotDate))
	after := s.slot(slotDate, "09:00")
	s.Equal(before, after)
	s.Equal(booking.DefaultSocialCapacity, s.slot(slotDate, "11:00").CapacitySocial, "slots without a row get the default")
}

func (s *BookingFlowTestSuite) TestCancelReservation() {
	res, err := s.reserve(morningSlot(slotDate).Social(4))
	s.Require().NoError(err)

	s.Require().NoError(s.admin.CancelReservation(s.ctx, " "+res.ID.String()+" "))
	s.Equal(0, s.slot(slotDate, "09:00").BookedSocial)

	err = s.admin.CancelReservation(s.ctx, res.ID.String())
	s.ErrorIs(err, commands.ErrReservationNotFound)
	s.True(errs.Is(err, errs.ErrNotFound))

	cases := map[string]error{
		"":                                     commands.ErrMissingReservationID,
		"not-a-uuid":                           commands.ErrInvalidReservationID,
		"{" + uuid.NewString() + "}":           commands.ErrInvalidReservationID,
		"urn:uuid:" + uuid.NewString():         commands.ErrInvalidReservationID,
		"zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz": commands.ErrInvalidReservationID,
	}
	for raw, want := range cases {
		err := s.admin.CancelReservation(s.ctx, raw)
		s.ErrorIs(err, want, raw)
		s.True(errs.Is(err, errs.ErrValidation), raw)
	}
}

func mustDate(s string) time.Time {
	d, err := booking.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}
