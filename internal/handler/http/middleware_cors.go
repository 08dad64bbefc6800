package http

import "net/http"

const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET,PUT,POST,DELETE"
	corsAllowHeaders = "Origin, X-Requested-With, Content-Type, Accept"
	corsCacheControl = "no-cache"
	corsMaxAge       = "1728000"
)

// withCORS stamps the permissive cross-origin policy on every response,
// whether or not the request carries an Origin header. Preflight requests
// are not answered here; they continue down the pipeline.
//
// Applying it twice yields the same headers.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("Access-Control-Allow-Origin", corsAllowOrigin)
		header.Set("Access-Control-Allow-Methods", corsAllowMethods)
		header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
		header.Set("Cache-Control", corsCacheControl)
		header.Set("Access-Control-Max-Age", corsMaxAge)

		next.ServeHTTP(w, r)
	})
}
