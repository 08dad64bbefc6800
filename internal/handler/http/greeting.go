package http

import (
	"net/http"

	"github.com/MKhiriev/eth2phone-gateway/internal/app"
	"github.com/MKhiriev/eth2phone-gateway/internal/logger"
	"github.com/MKhiriev/eth2phone-gateway/internal/utils"
	"github.com/MKhiriev/eth2phone-gateway/models"
)

// greet answers any method on the greeting path.
func (h *Handler) greet(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, models.GreetingResponse{Text: app.MsgGreeting}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing greeting")
	}
}
