// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/text/language"
)

const maxPort = 65535

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. TLS files are only checked for presence here; whether
// they are readable is decided when the HTTPS listener is built.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 1 || cfg.Server.Port > maxPort {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if cfg.Server.HTTPSOn {
		if cfg.Server.CABundlePath == "" || cfg.Server.CertPath == "" || cfg.Server.KeyPath == "" {
			return fmt.Errorf("%w: CA_BUNDLE, CA_CRT and SSL_CERT_KEY are required when HTTPS_ON is set", ErrInvalidTLSConfigs)
		}
	}

	if _, err := language.Parse(cfg.App.Locale); err != nil {
		return fmt.Errorf("%w: locale %q: %v", ErrInvalidAppConfigs, cfg.App.Locale, err)
	}

	return nil
}
