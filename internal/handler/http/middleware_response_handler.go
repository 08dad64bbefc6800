// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter records the status and size of a response as it passes
// through. withLogging, withMetrics and withNotFound inspect it after the
// downstream handler returns.
//
// Only the first WriteHeader reaches the wrapped writer.
type responseWriter struct {
	http.ResponseWriter

	// status is zero until a header has been written.
	status int

	wroteHeader bool

	// size counts body bytes accepted by the wrapped writer.
	size int
}

// WriteHeader forwards the first status code and drops the rest.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implies a 200 status when no header was written yet.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Unwrap exposes the underlying writer to [http.ResponseController], so
// handlers behind the pipeline can still flush or hijack.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
