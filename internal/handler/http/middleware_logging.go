package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/eth2phone-gateway/internal/logger"
	"github.com/MKhiriev/eth2phone-gateway/internal/utils"
)

// withLogging writes one access log line per request once the response is
// complete. It sits outside every stage that may answer early, and reads the
// method the request was routed with from the shared method slot, so
// overridden requests also carry the method that came over the wire.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := requestURI(r)
		slot, r := requestMethodSlot(r)

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		event := log.Info().
			Str("uri", uri).
			Str("method", slot.Effective).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size)
		if slot.Original != "" {
			event = event.Str("original_method", slot.Original)
		}
		event.Send()
	})
}

// requestMethodSlot returns the method slot of r, installing a fresh one on
// a copy of r when no outer stage did.
func requestMethodSlot(r *http.Request) (*utils.RequestMethod, *http.Request) {
	if slot, ok := utils.GetRequestMethodFromContext(r.Context()); ok {
		return slot, r
	}

	slot := &utils.RequestMethod{Effective: r.Method}
	if original, ok := utils.GetOriginalMethodFromContext(r.Context()); ok {
		slot.Original = original
	}

	return slot, r.WithContext(utils.WithRequestMethod(r.Context(), slot))
}
