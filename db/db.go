package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/flowchartsman/retry"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Open connects to Postgres, retrying the initial ping so the server can start
// alongside a database that is still booting. Caller must Close the pool.
func Open(ctx context.Context, dsn string, attempts int) (*sql.DB, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	if attempts < 1 {
		attempts = 1
	}

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	conn.SetMaxOpenConns(10)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	try := 0
	retrier := retry.NewRetrier(attempts, 200*time.Millisecond, 5*time.Second)
	err = retrier.Run(func() error {
		try++
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := conn.PingContext(pingCtx); err != nil {
			log.Warn().Err(err).Int("attempt", try).Msg("database ping failed")
			return err
		}
		return nil
	})
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}
