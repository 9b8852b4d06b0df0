//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike lets fixtures run on the suite pool or inside a test transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// InsertReservation writes a row directly, bypassing the admission checks.
// Used to arrange states such as "five social guests already booked".
func InsertReservation(t *testing.T, db DBLike, date, start, end, bookingType string, guests int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO booking_reservations (id, date, start_time, end_time, booking_type, guests, name, email)
		VALUES ($1, $2::date, $3::time, $4::time, $5, $6, 'Fixture Guest', 'fixture@example.com')`,
		id, date, start, end, bookingType, guests)
	require.NoError(t, err)
	return id
}

func UpsertSlot(t *testing.T, db DBLike, date, start, end string, capacity int, blocked bool, notes *string) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO booking_slots (date, start_time, end_time, capacity_social, is_blocked, notes, updated_at)
		VALUES ($1::date, $2::time, $3::time, $4, $5, $6, now())
		ON CONFLICT (date, start_time) DO UPDATE
		SET end_time = EXCLUDED.end_time,
		    capacity_social = EXCLUDED.capacity_social,
		    is_blocked = EXCLUDED.is_blocked,
		    notes = EXCLUDED.notes,
		    updated_at = EXCLUDED.updated_at`,
		date, start, end, capacity, blocked, notes)
	require.NoError(t, err)
}

func CountReservations(t *testing.T, db DBLike, date, start string) (count int, socialGuests int, private int) {
	t.Helper()

	err := db.QueryRow(context.Background(), `
		SELECT count(*),
		       coalesce(sum(guests) FILTER (WHERE booking_type = 'social'), 0),
		       count(*) FILTER (WHERE booking_type = 'private')
		FROM booking_reservations
		WHERE date = $1::date AND start_time = $2::time`,
		date, start).Scan(&count, &socialGuests, &private)
	require.NoError(t, err)
	return count, socialGuests, private
}

// ResetDB empties the booking tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE booking_reservations, booking_slots;")
	return err
}
