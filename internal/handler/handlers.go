package handler

import (
	"github.com/MKhiriev/eth2phone-gateway/internal/config"
	"github.com/MKhiriev/eth2phone-gateway/internal/handler/http"
	"github.com/MKhiriev/eth2phone-gateway/internal/logger"
	"github.com/MKhiriev/eth2phone-gateway/internal/observability"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(apiRouter http.APIRouter, cfg config.App, metrics *observability.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if apiRouter == nil {
		return nil, errNoAPIRouter
	}

	return &Handlers{
		HTTP: http.NewHandler(apiRouter, cfg.Locale, metrics, logger),
	}, nil
}
