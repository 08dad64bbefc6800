package http

import (
	"net/http"

	"github.com/MKhiriev/eth2phone-gateway/internal/httperr"
)

//go:generate mockgen -source=interfaces.go -destination=../../mock/api_router_mock.go -package=mock

// APIRouter builds the handler serving everything under the API prefix.
//
// By the time a request reaches the returned handler, cross-origin headers
// are set and the body is decoded (see utils.GetDecodedBodyFromContext).
// Failures must be reported through onError so they are rendered by the
// pipeline's error responder.
type APIRouter interface {
	// Mount returns the handler for requests under prefix.
	Mount(prefix string, onError httperr.ResponderFunc) http.Handler
}
