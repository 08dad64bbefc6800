package http

import (
	"errors"
	"fmt"
	"net/http"
)

// withRecovery turns a panic in any later stage into an unclassified failure
// rendered by the error responder. http.ErrAbortHandler is re-raised so the
// server can abort the connection.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			var err error
			if recErr, ok := rec.(error); ok {
				err = fmt.Errorf("recovered panic: %w", recErr)
			} else {
				err = fmt.Errorf("recovered panic: %v", rec)
			}
			h.respondError(w, r, err)
		}()

		next.ServeHTTP(w, r)
	})
}
