package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avast/retry-go/v4"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/davolkov/inventar/internal/config"
	"github.com/davolkov/inventar/internal/logger"
)

// DB wraps the shared *sql.DB handle for the relational backend. It is
// created once at startup and passed explicitly into every component that
// needs it.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens the connection pool and probes connectivity with a
// bounded fixed-delay retry loop. The probe never blocks indefinitely: after
// cfg.ConnectAttempts failed pings the last error is returned.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// bounded connection pool
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	err = retry.Do(
		func() error {
			return conn.PingContext(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(cfg.ConnectAttempts),
		retry.Delay(cfg.ConnectDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			log.Warn().Err(err).
				Str("func", "NewConnectPostgres").
				Uint("attempt", attempt+1).
				Uint("max_attempts", cfg.ConnectAttempts).
				Msg("database is not reachable yet")
		}),
	)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}

	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}
