package converter

import (
	"sauna-booking/internal/domain/booking"
	sqlc "sauna-booking/internal/infra/sqlc/generated"
	"sauna-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToReserveParams(res *booking.Reservation, defaultCapacity int) (sqlc.ReserveBookingSlotParams, error) {
	start, err := pgconv.TimeOfDayToPgtype(res.Slot().Start)
	if err != nil {
		return sqlc.ReserveBookingSlotParams{}, err
	}
	end, err := pgconv.TimeOfDayToPgtype(res.Slot().End)
	if err != nil {
		return sqlc.ReserveBookingSlotParams{}, err
	}

	return sqlc.ReserveBookingSlotParams{
		ID:              res.ID(),
		Date:            pgconv.DateToPgtype(res.Date()),
		StartTime:       start,
		EndTime:         end,
		BookingType:     res.BookingType().String(),
		Guests:          int32(res.Guests()), // #nosec G115 -- bounded by MaxGuests
		Name:            res.Name(),
		Email:           res.Email(),
		Phone:           pgconv.StringPtrToPgtype(res.Phone()),
		Notes:           pgconv.StringPtrToPgtype(res.Notes()),
		DefaultCapacity: int32(defaultCapacity), // #nosec G115 -- small constant
	}, nil
}

func SlotOverrideToUpsertParams(o booking.SlotOverride) (sqlc.UpsertSlotOverrideParams, error) {
	start, err := pgconv.TimeOfDayToPgtype(o.StartTime)
	if err != nil {
		return sqlc.UpsertSlotOverrideParams{}, err
	}
	end, err := pgconv.TimeOfDayToPgtype(o.EndTime)
	if err != nil {
		return sqlc.UpsertSlotOverrideParams{}, err
	}

	return sqlc.UpsertSlotOverrideParams{
		Date:           pgconv.DateToPgtype(o.Date),
		StartTime:      start,
		EndTime:        end,
		CapacitySocial: int32(o.CapacitySocial), // #nosec G115 -- bounded by CoerceCapacity
		IsBlocked:      o.IsBlocked,
		Notes:          pgconv.StringPtrToPgtype(o.Notes),
		UpdatedAt:      pgconv.TimeToPgtype(o.UpdatedAt),
	}, nil
}

// DayOverridesToParams folds a whole-day batch into one statement. All rows
// must share date, capacity, blocked flag and timestamp. Capacity only lands
// on existing rows when reset is set.
func DayOverridesToParams(overrides []booking.SlotOverride, reset bool) (sqlc.UpsertDaySlotsParams, error) {
	if len(overrides) == 0 {
		return sqlc.UpsertDaySlotsParams{}, booking.ErrInvalidSlotData
	}

	starts := make([]pgtype.Time, len(overrides))
	ends := make([]pgtype.Time, len(overrides))
	for i, o := range overrides {
		s, err := pgconv.TimeOfDayToPgtype(o.StartTime)
		if err != nil {
			return sqlc.UpsertDaySlotsParams{}, err
		}
		e, err := pgconv.TimeOfDayToPgtype(o.EndTime)
		if err != nil {
			return sqlc.UpsertDaySlotsParams{}, err
		}
		starts[i] = s
		ends[i] = e
	}

	first := overrides[0]
	return sqlc.UpsertDaySlotsParams{
		Date:           pgconv.DateToPgtype(first.Date),
		CapacitySocial: int32(first.CapacitySocial), // #nosec G115 -- default capacity
		IsBlocked:      first.IsBlocked,
		UpdatedAt:      pgconv.TimeToPgtype(first.UpdatedAt),
		StartTimes:     starts,
		EndTimes:       ends,
		Reset:          reset,
	}, nil
}

func SlotOverrideFromInfra(row sqlc.BookingSlot) booking.SlotOverride {
	return booking.SlotOverride{
		Date:           pgconv.DateFromPgtype(row.Date),
		StartTime:      pgconv.TimeOfDayString(row.StartTime),
		EndTime:        pgconv.TimeOfDayString(row.EndTime),
		CapacitySocial: int(row.CapacitySocial),
		IsBlocked:      row.IsBlocked,
		Notes:          pgconv.StringPtrFromPgtype(row.Notes),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func ReservationSummaryFromInfra(row sqlc.ListReservationSummariesByDatesRow) booking.ReservationSummary {
	return booking.ReservationSummary{
		ID:          row.ID,
		Date:        pgconv.DateFromPgtype(row.Date),
		StartTime:   pgconv.TimeOfDayString(row.StartTime),
		BookingType: booking.BookingType(row.BookingType),
		Guests:      int(row.Guests),
	}
}
