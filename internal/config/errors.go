package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, a port outside 1..65535).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidTLSConfigs indicates that HTTPS is on but at least one of
	// the CA bundle, certificate or key paths is missing.
	ErrInvalidTLSConfigs = errors.New("invalid tls configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a locale that is not a valid BCP 47 tag).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
