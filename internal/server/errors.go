// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrLoadingTLSMaterial is returned when the CA bundle, certificate or
	// key cannot be read or parsed.
	ErrLoadingTLSMaterial = errors.New("error loading TLS material")

	// ErrBindingListener is returned when a listener cannot bind its port.
	ErrBindingListener = errors.New("error binding listener")
)
