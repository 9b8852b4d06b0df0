package readstore

import (
	"context"
	"time"

	"sauna-booking/internal/domain/booking"
	"sauna-booking/internal/infra"
	sqlc "sauna-booking/internal/infra/sqlc/generated"
	"sauna-booking/internal/pkg/pgconv"
	"sauna-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationViewQueries interface {
	ListReservationsByDates(ctx context.Context, db sqlc.DBTX, dates []pgtype.Date) ([]sqlc.BookingReservation, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries *sqlc.Queries, db sqlc.DBTX) *ReservationReadStore {
	return newReservationReadStore(queries, db)
}

func newReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

// ListByDates returns reservations ordered by date, start time and creation.
func (r *ReservationReadStore) ListByDates(ctx context.Context, dates []time.Time) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByDates(ctx, r.db, pgconv.DatesToPgtype(dates))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = rowToReservationView(row)
	}
	return result, nil
}

func rowToReservationView(row sqlc.BookingReservation) *queries.ReservationView {
	return &queries.ReservationView{
		ID:          row.ID,
		Date:        booking.FormatDate(pgconv.DateFromPgtype(row.Date)),
		StartTime:   pgconv.TimeOfDayString(row.StartTime),
		EndTime:     pgconv.TimeOfDayString(row.EndTime),
		BookingType: row.BookingType,
		Guests:      int(row.Guests),
		Name:        row.Name,
		Email:       row.Email,
		Phone:       pgconv.StringPtrFromPgtype(row.Phone),
		Notes:       pgconv.StringPtrFromPgtype(row.Notes),
		Status:      row.Status,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
