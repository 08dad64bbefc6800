package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/eth2phone-gateway/internal/app"
	"github.com/MKhiriev/eth2phone-gateway/internal/httperr"
	"github.com/MKhiriev/eth2phone-gateway/internal/logger"
	"github.com/MKhiriev/eth2phone-gateway/internal/utils"
	"github.com/MKhiriev/eth2phone-gateway/models"
	"github.com/go-chi/chi/v5"
)

const healthCheckTimeout = 2 * time.Second

type Router struct {
	version string
	db      Pinger

	logger *logger.Logger
}

// NewRouter creates the API router. db may be nil when no database is
// configured; health then only reflects the process itself.
func NewRouter(version string, db Pinger, logger *logger.Logger) *Router {
	return &Router{
		version: version,
		db:      db,
		logger:  logger,
	}
}

// Mount implements the pipeline's API router contract.
func (rt *Router) Mount(prefix string, onError httperr.ResponderFunc) http.Handler {
	rt.logger.Info().Str("prefix", prefix).Msg("mounting api router")

	router := chi.NewRouter()
	router.Method(http.MethodGet, "/version", httperr.Handle(onError, rt.getVersion))
	router.Method(http.MethodGet, "/health", httperr.Handle(onError, rt.getHealth))

	router.NotFound(rt.notFound)
	router.MethodNotAllowed(rt.notFound)

	return router
}

func (rt *Router) getVersion(w http.ResponseWriter, r *http.Request) error {
	_, err := utils.WriteJSON(w, models.VersionResponse{Version: rt.version}, http.StatusOK)
	return err
}

func (rt *Router) getHealth(w http.ResponseWriter, r *http.Request) error {
	if rt.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		if err := rt.db.Ping(ctx); err != nil {
			return httperr.WithStatus(http.StatusServiceUnavailable, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err))
		}
	}

	_, err := utils.WriteJSON(w, models.HealthResponse{Status: app.MsgStatusOK}, http.StatusOK)
	return err
}

func (rt *Router) notFound(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, models.NotFoundResponse{Error: app.MsgNotFound}, http.StatusNotFound); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing not found response")
	}
}
