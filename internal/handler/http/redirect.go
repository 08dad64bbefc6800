package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/eth2phone-gateway/internal/app"
)

// redirectToStaticSite sends the client to the same path and query on the
// companion static site.
func (h *Handler) redirectToStaticSite(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, app.StaticSiteOrigin+requestURI(r), http.StatusFound)
}

// requestURI returns the origin-form target of the request exactly as it
// arrived, path and query included. Requests built in process, or sent in
// absolute or asterisk form, fall back to the parsed URL.
func requestURI(r *http.Request) string {
	if strings.HasPrefix(r.RequestURI, "/") {
		return r.RequestURI
	}
	return r.URL.RequestURI()
}
