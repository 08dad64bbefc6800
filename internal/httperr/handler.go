package httperr

import "net/http"

// ResponderFunc renders a failure for the request that produced it. The
// ingress pipeline hands its error responder to every mounted collaborator as
// a ResponderFunc so that all failures end up in one place.
type ResponderFunc func(w http.ResponseWriter, r *http.Request, err error)

// HandlerFunc is an HTTP handler that reports failure by returning an error
// instead of writing an error response itself.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts fn to an [http.Handler]. A non-nil error returned by fn is
// passed to onError unchanged.
func Handle(onError ResponderFunc, fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			onError(w, r, err)
		}
	})
}
