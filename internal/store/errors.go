// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrNotConnected is returned by Connector.Ping until a connection has
	// been established.
	ErrNotConnected = errors.New("database is not connected")

	// ErrNoDSN is returned when the connector is asked to connect without a
	// configured data source name.
	ErrNoDSN = errors.New("no database DSN is configured")

	// ErrConnectorClosed is returned by a connection attempt that finished
	// after the connector was closed.
	ErrConnectorClosed = errors.New("connector is closed")

	ErrOpeningDatabase = errors.New("error opening database")
	ErrPingingDatabase = errors.New("error pinging database")
)
