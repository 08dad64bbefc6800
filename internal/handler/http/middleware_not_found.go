package http

import (
	"net/http"

	"github.com/MKhiriev/eth2phone-gateway/internal/app"
	"github.com/MKhiriev/eth2phone-gateway/internal/logger"
	"github.com/MKhiriev/eth2phone-gateway/internal/utils"
	"github.com/MKhiriev/eth2phone-gateway/models"
)

// withNotFound answers with the JSON not-found payload when nothing further
// down the pipeline wrote a response.
func (h *Handler) withNotFound(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(nw, r)

		if nw.wroteHeader {
			return
		}
		h.notFound(w, r)
	})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	log.Debug().Str("url", requestURI(r)).Msg("Not found URL")

	if _, err := utils.WriteJSON(w, models.NotFoundResponse{Error: app.MsgNotFound}, http.StatusNotFound); err != nil {
		log.Err(err).Msg("error writing not found response")
	}
}
