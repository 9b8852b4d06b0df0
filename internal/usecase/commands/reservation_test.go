//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"sauna-booking/internal/domain/booking"
	"sauna-booking/internal/pkg/clock"
	"sauna-booking/internal/pkg/errs"
	"sauna-booking/internal/usecase/commands"
	"sauna-booking/internal/usecase/queries"
	"sauna-booking/tests/common/builder"
	"sauna-booking/tests/common/fakestore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	slotDate  = "2025-06-06"
	blockDate = "2025-06-07"
)

type BookingFlowTestSuite struct {
	suite.Suite
	ctx          context.Context
	store        *fakestore.Store
	clock        *clock.Fixed
	location     *time.Location
	reservations commands.ReservationCommands
	admin        commands.SlotAdminCommands
	availability queries.AvailabilityQueries
}

func (s *BookingFlowTestSuite) SetupTest() {
	loc, err := time.LoadLocation("Europe/London")
	s.Require().NoError(err)

	s.ctx = context.Background()
	s.location = loc
	s.store = fakestore.New()
	s.clock = clock.NewFixed(time.Date(2025, 6, 1, 9, 0, 0, 0, loc))
	s.reservations = commands.NewReservationUseCase(s.store, s.clock, loc)
	s.admin = commands.NewSlotAdminUseCase(s.store, s.store, s.clock)
	s.availability = queries.NewAvailabilityQueries(s.store, s.clock, loc)
}

func TestBookingFlowSuite(t *testing.T) {
	suite.Run(t, new(BookingFlowTestSuite))
}

func (s *BookingFlowTestSuite) reserve(b *builder.ReservationBuilder) (*commands.ReserveResult, error) {
	return s.reservations.Reserve(s.ctx, b.BuildRequestDTO())
}

func (s *BookingFlowTestSuite) slot(date, start string) queries.SlotView {
	res, err := s.availability.Availability(s.ctx, date)
	s.Require().NoError(err)
	for _, v := range res.Slots {
		if v.Start == start {
			return v
		}
	}
	s.FailNow("slot not found", "%s %s", date, start)
	return queries.SlotView{}
}

func morningSlot(date string) *builder.ReservationBuilder {
	return builder.NewReservationBuilder(date).Slot("09:00", "11:00")
}

// ================================================================================
// Scenarios
// ================================================================================

func (s *BookingFlowTestSuite) TestScenarioA_PartialSocialBooking() {
	v := s.slot(slotDate, "09:00")
	s.Equal("open", v.Status)
	s.Equal(0, v.BookedSocial)
	s.Equal(12, v.AvailableSocial)

	res, err := s.reserve(morningSlot(slotDate).Social(5))
	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, res.ID)

	v = s.slot(slotDate, "09:00")
	s.Equal("open", v.Status)
	s.Equal(5, v.BookedSocial)
	s.Equal(7, v.AvailableSocial)
}

func (s *BookingFlowTestSuite) TestScenarioB_FillToCapacity() {
	_, err := s.reserve(morningSlot(slotDate).Social(5))
	s.Require().NoError(err)
	_, err = s.reserve(morningSlot(slotDate).Social(7))
	s.Require().NoError(err)

	v := s.slot(slotDate, "09:00")
	s.Equal("full", v.Status)
	s.Equal(0, v.AvailableSocial)

	_, err = s.reserve(morningSlot(slotDate).Social(1))
	s.ErrorIs(err, booking.ErrCapacityExceeded)
	s.True(errs.Is(err, errs.ErrConflict))
}

func (s *BookingFlowTestSuite) TestScenarioC_PrivateThenClear() {
	_, err := s.reserve(morningSlot(slotDate).Private(6))
	s.Require().NoError(err)
	s.Equal("private", s.slot(slotDate, "09:00").Status)

	_, err = s.reserve(morningSlot(slotDate).Social(1))
	s.ErrorIs(err, booking.ErrSlotPrivatelyBooked)

	_, err = s.reserve(morningSlot(slotDate).Private(2))
	s.ErrorIs(err, booking.ErrSlotPrivatelyBooked)

	deleted, err := s.admin.ClearSlot(s.ctx, slotDate, "09:00")
	s.Require().NoError(err)
	s.Equal(int64(1), deleted)

	v := s.slot(slotDate, "09:00")
	s.Equal("open", v.Status)
	s.Equal(0, v.BookedSocial)
}

func (s *BookingFlowTestSuite) TestScenarioD_BlockAndUnblockDay() {
	_, err := s.reserve(morningSlot(blockDate).Private(4))
	s.Require().NoError(err)
	_, err = s.reserve(builder.NewReservationBuilder(blockDate).Social(12))
	s.Require().NoError(err)

	s.Require().NoError(s.admin.BlockDay(s.ctx, blockDate))

	res, err := s.availability.Availability(s.ctx, blockDate)
	s.Require().NoError(err)
	s.Len(res.Slots, 6)
	for _, v := range res.Slots {
		s.Equal("blocked", v.Status, v.Start)
		s.Equal(0, v.AvailableSocial, v.Start)
	}

	for _, sl := range booking.Slots() {
		_, err := s.reserve(builder.NewReservationBuilder(blockDate).Slot(sl.Start, sl.End).Social(1))
		s.ErrorIs(err, booking.ErrSlotBlocked, sl.Start)
	}

	s.Require().NoError(s.admin.UnblockDay(s.ctx, blockDate))

	s.Equal("private", s.slot(blockDate, "09:00").Status)
	s.Equal("full", s.slot(blockDate, "11:00").Status)
	s.Equal("open", s.slot(blockDate, "13:00").Status)
}

// ================================================================================
// Invariants
// ================================================================================

func (s *BookingFlowTestSuite) TestPrivateAfterSocialIsRejected() {
	_, err := s.reserve(morningSlot(slotDate).Social(1))
	s.Require().NoError(err)

	_, err = s.reserve(morningSlot(slotDate).Private(2))
	s.ErrorIs(err, booking.ErrSlotHasSocialBookings)
}

func (s *BookingFlowTestSuite) TestCapacityInvariantUnderConcurrency() {
	const workers = 40

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded, rejected := 0, 0
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.reserve(morningSlot(slotDate).Social(2))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, booking.ErrCapacityExceeded):
				rejected++
			}
		}()
	}
	wg.Wait()

	s.Equal(6, succeeded)
	s.Equal(workers-6, rejected)

	v := s.slot(slotDate, "09:00")
	s.Equal(12, v.BookedSocial)
	s.Equal("full", v.Status)
}

func (s *BookingFlowTestSuite) TestExclusivityUnderConcurrency() {
	const workers = 20

	var wg sync.WaitGroup
	var mu sync.Mutex
	privateWins := 0
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := morningSlot(slotDate).Social(1)
			if i%2 == 0 {
				b = morningSlot(slotDate).Private(3)
			}
			_, err := s.reserve(b)
			if err == nil && i%2 == 0 {
				mu.Lock()
				privateWins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	v := s.slot(slotDate, "09:00")
	s.LessOrEqual(privateWins, 1)
	if v.HasPrivate {
		s.Equal(1, privateWins)
		s.Equal(0, v.BookedSocial)
		s.Equal("private", v.Status)
	} else {
		s.Equal(0, privateWins)
		s.Positive(v.BookedSocial)
	}
}

func (s *BookingFlowTestSuite) TestBlockedSlotRejectsRegardlessOfCapacity() {
	s.Require().NoError(s.admin.UpdateSlot(s.ctx, booking.SlotOverrideInput{
		Date: slotDate, StartTime: "09:00", EndTime: "11:00", CapacitySocial: ptrInt(50), IsBlocked: true,
	}))

	_, err := s.reserve(morningSlot(slotDate).Social(1))
	s.ErrorIs(err, booking.ErrSlotBlocked)
	_, err = s.reserve(morningSlot(slotDate).Private(1))
	s.ErrorIs(err, booking.ErrSlotBlocked)
	s.Equal("blocked", s.slot(slotDate, "09:00").Status)
}

// ================================================================================
// Reserve validation and store failures
// ================================================================================

func (s *BookingFlowTestSuite) TestAdvanceWindow() {
	// 2025-06-06 09:00 BST; 17h59m before is too soon even though the slot is empty.
	s.clock.Set(time.Date(2025, 6, 5, 15, 1, 0, 0, s.location))
	_, err := s.reserve(morningSlot(slotDate).Social(1))
	s.ErrorIs(err, booking.ErrTooSoon)
	s.True(errs.Is(err, errs.ErrConflict))
	s.Equal(0, s.store.ReserveCalls())

	s.clock.Set(time.Date(2025, 6, 5, 15, 0, 0, 0, s.location))
	_, err = s.reserve(morningSlot(slotDate).Social(1))
	s.NoError(err)
}

func (s *BookingFlowTestSuite) TestValidationNeverReachesStore() {
	cases := []*builder.ReservationBuilder{
		morningSlot("2025-06-31"),
		morningSlot(slotDate).Slot("09:00", "10:00"),
		morningSlot(slotDate).Social(13),
		morningSlot(slotDate).Private(15),
		morningSlot(slotDate).With(func(b *builder.ReservationBuilder) { b.Email = "nope" }),
		morningSlot(slotDate).With(func(b *builder.ReservationBuilder) { b.BookingType = "group" }),
	}
	for _, b := range cases {
		_, err := s.reserve(b)
		s.True(errs.Is(err, errs.ErrValidation), "expected validation error, got %v", err)
	}
	s.Equal(0, s.store.ReserveCalls())
}

func (s *BookingFlowTestSuite) TestStoreFailureIsMarked() {
	s.store.FailWith(errors.New("connection refused"))

	_, err := s.reserve(morningSlot(slotDate))
	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrDatabaseOperationFailed))
	s.False(errs.Is(err, errs.ErrConflict))
	s.False(errs.Is(err, errs.ErrValidation))
}

func ptrInt(i int) *int { return &i }
