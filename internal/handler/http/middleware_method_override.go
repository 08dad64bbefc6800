package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/eth2phone-gateway/internal/utils"
)

const (
	methodOverrideHeader = "X-HTTP-Method-Override"
	methodOverrideField  = "_method"
)

var overridableMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodConnect: {},
	http.MethodOptions: {},
	http.MethodTrace:   {},
}

// withMethodOverride lets POST requests declare the method they stand for,
// through the X-HTTP-Method-Override header or, failing that, a _method
// field of an URL-encoded body. Unknown methods are ignored. The wire method
// is kept in the request context and, when an outer stage installed one, in
// the shared method slot.
func withMethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			next.ServeHTTP(w, r)
			return
		}

		method := overrideMethod(r)
		if _, ok := overridableMethods[method]; !ok || method == r.Method {
			next.ServeHTTP(w, r)
			return
		}

		if slot, ok := utils.GetRequestMethodFromContext(r.Context()); ok {
			slot.Effective = method
			slot.Original = r.Method
		}

		overridden := r.WithContext(utils.WithOriginalMethod(r.Context(), r.Method))
		overridden.Method = method

		next.ServeHTTP(w, overridden)
	})
}

func overrideMethod(r *http.Request) string {
	if header := r.Header.Get(methodOverrideHeader); header != "" {
		first, _, _ := strings.Cut(header, ",")
		return strings.ToUpper(strings.TrimSpace(first))
	}

	body, ok := utils.GetDecodedBodyFromContext(r.Context())
	if !ok || body.Form == nil {
		return ""
	}

	return strings.ToUpper(strings.TrimSpace(body.Form.Get(methodOverrideField)))
}
