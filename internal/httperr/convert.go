package httperr

import (
	"errors"
	"net/http"
)

// statusCoder is implemented by errors that carry their own HTTP status but
// are not [*Error] values, e.g. failures surfaced by third-party routers.
type statusCoder interface {
	StatusCode() int
}

// From converts any error into an [*Error]. It is the only place where error
// values are inspected for classification.
//
// Precedence:
//  1. an [*Error] anywhere in the chain is returned unchanged;
//  2. [ErrBadCSRFToken] in the chain yields [KindCSRFTokenMismatch];
//  3. an [*http.MaxBytesError] yields an unclassified 413;
//  4. an error exposing StatusCode() int yields an unclassified failure with
//     that status;
//  5. anything else is unclassified without a declared status.
//
// From(nil) returns nil.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	if errors.Is(err, ErrBadCSRFToken) {
		return CSRFTokenMismatch(err)
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return WithStatus(http.StatusRequestEntityTooLarge, err)
	}

	var coder statusCoder
	if errors.As(err, &coder) {
		return WithStatus(coder.StatusCode(), err)
	}

	return Unclassified(err)
}
