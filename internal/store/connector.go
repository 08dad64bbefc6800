// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the gateway's optional database connection.
//
// The connection is established in the background so that a slow or absent
// database never delays the listeners. Until it succeeds, [Connector.Ping]
// reports [ErrNotConnected].
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/eth2phone-gateway/internal/config"
	"github.com/MKhiriev/eth2phone-gateway/internal/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	driverName = "pgx"

	maxOpenConns = 10
	maxIdleConns = 4
)

// retryDelays are the pauses between connection attempts.
var retryDelays = []time.Duration{time.Second, 3 * time.Second, 5 * time.Second}

// Opener opens a database handle, see [sql.Open].
type Opener func(driverName, dsn string) (*sql.DB, error)

type Connector struct {
	dsn    string
	open   Opener
	delays []time.Duration

	errorClassificator ErrorClassificator
	db                 atomic.Pointer[sql.DB]

	// mu orders publishing a fresh connection against Close.
	mu     sync.Mutex
	closed bool

	logger *logger.Logger
}

func NewConnector(cfg config.DB, logger *logger.Logger) *Connector {
	return &Connector{
		dsn:                cfg.DSN,
		open:               sql.Open,
		delays:             retryDelays,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger,
	}
}

// ConnectInBackground starts connecting without blocking the caller. The
// returned channel is closed once the attempt has finished either way. With
// no DSN configured nothing is attempted and the channel is already closed.
func (c *Connector) ConnectInBackground(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})

	if c.dsn == "" {
		c.logger.Info().Msg("no database DSN configured, skipping connection")
		close(done)
		return done
	}

	go func() {
		defer close(done)

		if err := c.connect(ctx); err != nil {
			c.logger.Err(err).
				Str("pg_code", postgresErrorCode(err)).
				Msg("error connecting database")
			return
		}
		c.logger.Info().Msg("connected to database successfully")
	}()

	return done
}

func (c *Connector) connect(ctx context.Context) error {
	if c.dsn == "" {
		return ErrNoDSN
	}

	// establish connection
	conn, err := c.open(driverName, c.dsn)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}

	// setup connections
	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)

	// ping database, retrying transient failures
	for attempt := 0; ; attempt++ {
		err = conn.PingContext(ctx)
		if err == nil {
			break
		}

		if attempt >= len(c.delays) || c.errorClassificator.Classify(err) != Retryable {
			_ = conn.Close()
			return fmt.Errorf("%w: %w", ErrPingingDatabase, err)
		}

		c.logger.Warn().Err(err).Int("attempt", attempt+1).Dur("retry_in", c.delays[attempt]).Msg("database is not ready")
		select {
		case <-ctx.Done():
			_ = conn.Close()
			return fmt.Errorf("%w: %w", ErrPingingDatabase, ctx.Err())
		case <-time.After(c.delays[attempt]):
		}
	}

	return c.publish(ctx, conn)
}

// publish makes conn visible to Ping, unless the connector was closed or
// ctx ended while connecting, in which case conn is released.
func (c *Connector) publish(ctx context.Context, conn *sql.DB) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		_ = conn.Close()
		return ErrConnectorClosed
	}
	if err := ctx.Err(); err != nil {
		_ = conn.Close()
		return fmt.Errorf("%w: %w", ErrPingingDatabase, err)
	}

	c.db.Store(conn)
	return nil
}

// Ping checks the established connection.
func (c *Connector) Ping(ctx context.Context) error {
	db := c.db.Load()
	if db == nil {
		return ErrNotConnected
	}

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrPingingDatabase, err)
	}
	return nil
}

// Close releases the connection, if any. A connection that is still being
// established is released as soon as the attempt finishes.
func (c *Connector) Close() error {
	c.mu.Lock()
	c.closed = true
	db := c.db.Swap(nil)
	c.mu.Unlock()

	if db == nil {
		return nil
	}
	return db.Close()
}
