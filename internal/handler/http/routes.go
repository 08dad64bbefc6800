package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

const (
	apiPrefix      = "/api/v1"
	greetingPrefix = "/hello"
)

// Init builds the full ingress pipeline.
//
// Middleware order is fixed: the cross-origin policy runs before body
// decoding, which runs before method override. Routing happens after all of
// them, so an overridden method is the one routed on. The access log and the
// metrics wrap every stage that can answer early, including recovery, and
// emit once the response is complete.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(h.withMetrics)
	router.Use(h.withRecovery)
	router.Use(withCORS)
	router.Use(h.withBodyDecoding)
	router.Use(withMethodOverride)
	router.Use(h.withNotFound)

	api := withCORS(h.apiRouter.Mount(apiPrefix, h.respondError))
	router.Mount(apiPrefix, api)

	router.HandleFunc(greetingPrefix, h.greet)
	router.HandleFunc(greetingPrefix+"/*", h.greet)

	router.NotFound(h.redirectToStaticSite)
	router.MethodNotAllowed(h.dispatchByPrefix(api))

	return router
}

// RedirectOnly builds the reduced pipeline of a listener whose only job is
// to send clients to the static site.
func (h *Handler) RedirectOnly() http.Handler {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(h.withMetrics)
	router.Use(h.withRecovery)

	router.HandleFunc("/*", h.redirectToStaticSite)
	router.NotFound(h.redirectToStaticSite)
	router.MethodNotAllowed(h.redirectToStaticSite)

	return router
}

// dispatchByPrefix routes requests whose method chi does not know. Such
// requests still follow the prefix precedence of the dispatcher.
func (h *Handler) dispatchByPrefix(api http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case hasPathPrefix(r.URL.Path, apiPrefix):
			api.ServeHTTP(w, r)
		case hasPathPrefix(r.URL.Path, greetingPrefix):
			h.greet(w, r)
		default:
			h.redirectToStaticSite(w, r)
		}
	}
}

// hasPathPrefix reports whether path is prefix itself or lies below it.
// "/hello" and "/hello/x" match "/hello", "/helloworld" does not.
func hasPathPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}
