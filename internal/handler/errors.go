// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoAPIRouter is returned by NewHandlers when no API router is supplied.
// Without one the pipeline has nothing to mount under the API prefix, which
// is treated as a fatal misconfiguration at startup.
var errNoAPIRouter = errors.New("no api router is provided")
