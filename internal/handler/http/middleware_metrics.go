package http

import (
	"net/http"
	"time"
)

// withMetrics records the request count and latency of every request under
// the method it was routed with. It is a pass-through when the handler has
// no metrics.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	if h.metrics == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		slot, r := requestMethodSlot(r)
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		status := mw.status
		if status == 0 {
			status = http.StatusOK
		}
		h.metrics.ObserveRequest(slot.Effective, status, time.Since(start).Seconds())
	})
}
