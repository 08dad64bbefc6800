// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// gateway. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the reported version and the
	// locale of user-facing messages.
	App App `envPrefix:"APP_"`

	// Storage holds the database connection settings.
	Storage Storage

	// Server holds the listening strategy: ports, TLS material and the
	// optional metrics endpoint.
	Server Server

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running gateway.
	// Exposed via the API router's version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Locale is the BCP 47 tag selecting the language of localized error
	// messages (e.g. "ru", "en"). Defaults to "ru".
	// Env: APP_LOCALE
	Locale string `env:"LOCALE"`
}

// Storage groups the configuration for persistence backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL Data Source Name used to open the database
	// connection. An empty DSN disables the connector.
	// Env: DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds the settings of the inbound listeners.
type Server struct {
	// HTTPSOn enables the TLS listener on port 443 next to the plain HTTP
	// listener.
	// Env: HTTPS_ON
	HTTPSOn bool `env:"HTTPS_ON"`

	// Port is the TCP port of the plain HTTP listener. Defaults to 8080.
	// Env: PORT
	Port int `env:"PORT"`

	// CABundlePath is the path to the PEM bundle of intermediate
	// certificates served after the leaf certificate.
	// Env: CA_BUNDLE
	CABundlePath string `env:"CA_BUNDLE"`

	// CertPath is the path to the PEM leaf certificate.
	// Env: CA_CRT
	CertPath string `env:"CA_CRT"`

	// KeyPath is the path to the PEM private key of the leaf certificate.
	// Env: SSL_CERT_KEY
	KeyPath string `env:"SSL_CERT_KEY"`

	// HTTPRedirectOnly turns the plain HTTP listener into a pure redirect to
	// the static site while HTTPS is on. Off by default: the plain listener
	// serves the whole pipeline.
	// Env: HTTP_REDIRECT_ONLY
	HTTPRedirectOnly bool `env:"HTTP_REDIRECT_ONLY"`

	// MetricsAddress is the "host:port" of the optional Prometheus listener.
	// Empty disables it.
	// Env: METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`

	// ShutdownTimeout bounds graceful shutdown of all listeners
	// (e.g. "10s"). Defaults to 10 seconds.
	// Env: SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

const (
	defaultPort            = 8080
	defaultLocale          = "ru"
	defaultShutdownTimeout = 10 * time.Second
)

// GetStructuredConfig loads, merges, and validates the gateway
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// applyDefaults fills the fields that were left unset by every source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.App.Locale == "" {
		cfg.App.Locale = defaultLocale
	}
}
