package pgconv

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const microsPerMinute = int64(time.Minute / time.Microsecond)

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// Dates travel as civil dates; the location of t is ignored.
func DateToPgtype(t time.Time) pgtype.Date {
	y, m, d := t.Date()
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

func DatesToPgtype(ts []time.Time) []pgtype.Date {
	out := make([]pgtype.Date, len(ts))
	for i, t := range ts {
		out[i] = DateToPgtype(t)
	}
	return out
}

func DateFromPgtype(pd pgtype.Date) time.Time {
	y, m, d := pd.Time.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TimeOfDayToPgtype accepts "HH:MM" or "HH:MM:SS".
func TimeOfDayToPgtype(s string) (pgtype.Time, error) {
	var h, m, sec int
	switch len(s) {
	case 5:
		if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
			return pgtype.Time{}, ErrInvalidTimeOfDay
		}
	case 8:
		if _, err := fmt.Sscanf(s, "%02d:%02d:%02d", &h, &m, &sec); err != nil {
			return pgtype.Time{}, ErrInvalidTimeOfDay
		}
	default:
		return pgtype.Time{}, ErrInvalidTimeOfDay
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return pgtype.Time{}, ErrInvalidTimeOfDay
	}
	micros := int64(h)*60*microsPerMinute + int64(m)*microsPerMinute + int64(sec)*int64(time.Second/time.Microsecond)
	return pgtype.Time{Microseconds: micros, Valid: true}, nil
}

// TimeOfDayString renders a time column as "HH:MM", dropping seconds.
func TimeOfDayString(pt pgtype.Time) string {
	if !pt.Valid {
		return ""
	}
	minutes := pt.Microseconds / microsPerMinute
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
