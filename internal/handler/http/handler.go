package http

import (
	"github.com/MKhiriev/eth2phone-gateway/internal/logger"
	"github.com/MKhiriev/eth2phone-gateway/internal/observability"
	"github.com/MKhiriev/eth2phone-gateway/internal/utils"
)

type Handler struct {
	apiRouter APIRouter
	messages  messageCatalog
	traceIDs  *utils.UUIDGenerator
	metrics   *observability.Metrics

	logger *logger.Logger
}

// NewHandler creates the pipeline handler. locale selects the language of
// localized error messages; metrics may be nil.
func NewHandler(apiRouter APIRouter, locale string, metrics *observability.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Str("locale", locale).Msg("http handler created")
	return &Handler{
		apiRouter: apiRouter,
		messages:  newMessageCatalog(locale),
		traceIDs:  utils.NewUUIDGenerator(),
		metrics:   metrics,
		logger:    logger,
	}
}
