package db

import (
	"context"
	"fmt"
	"time"

	"sauna-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, pool.Close, nil
}

// CheckSchema fails fast when migrations have not been applied.
func CheckSchema(ctx context.Context, pool *pgxpool.Pool) error {
	var tables, routines bool
	err := pool.QueryRow(ctx, `
		SELECT to_regclass('booking_slots') IS NOT NULL AND to_regclass('booking_reservations') IS NOT NULL,
		       EXISTS (SELECT 1 FROM pg_proc WHERE proname = 'reserve_booking_slot')`,
	).Scan(&tables, &routines)
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}
	if !tables || !routines {
		return fmt.Errorf("booking schema is incomplete (tables=%t, reserve_booking_slot=%t); apply migrations first", tables, routines)
	}
	return nil
}
