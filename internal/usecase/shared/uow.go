package shared

import (
	"context"

	sqlc "sauna-booking/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// WithinReadOnly: read-only repeatable-read transaction so several reads see one snapshot
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: single statement operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}
