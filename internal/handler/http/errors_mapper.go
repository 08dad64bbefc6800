package http

import (
	"net/http"

	"github.com/MKhiriev/eth2phone-gateway/internal/httperr"
	"github.com/MKhiriev/eth2phone-gateway/internal/logger"
	"github.com/MKhiriev/eth2phone-gateway/internal/utils"
	"github.com/MKhiriev/eth2phone-gateway/models"
	"github.com/rs/zerolog"
)

// respondError is the single place where failures become responses. The
// error is logged in full, classified, and answered with a JSON body whose
// message depends only on the failure kind.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := h.requestLogger(r)
	log.Error().Err(err).Send()

	classified := httperr.From(err)
	if classified == nil {
		classified = httperr.Unclassified(nil)
	}
	status := classified.StatusCode()

	log.FullError(err, r.Method, requestURI(r))

	if h.metrics != nil {
		h.metrics.ErrorsTotal.WithLabelValues(classified.Kind.String()).Inc()
	}

	response := models.ErrorResponse{ErrorMessage: h.messages.message(classified)}
	if _, writeErr := utils.WriteJSON(w, response, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}

// requestLogger returns the request-scoped logger, or the handler's own
// logger when the request carries none.
func (h *Handler) requestLogger(r *http.Request) *logger.Logger {
	if l := logger.FromRequest(r); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return h.logger
}
