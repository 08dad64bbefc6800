// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package httperr defines the closed set of failure kinds the ingress
// pipeline knows how to present to a client, and the single conversion step
// that maps an arbitrary error onto that set.
//
// Every stage of the pipeline, and every collaborator mounted into it,
// reports failures as plain Go errors. Before a failure is rendered it is
// passed through [From], which yields an [*Error] carrying a [Kind] and an
// optional declared HTTP status. Nothing downstream of [From] inspects ad hoc
// error fields.
package httperr

import (
	"errors"
	"net/http"
)

// Kind classifies a failure for the purpose of choosing the user-facing
// message.
type Kind int

const (
	// KindUnclassified covers every failure the pipeline has no specific
	// presentation for. Its details are never shown to the client.
	KindUnclassified Kind = iota

	// KindBadRequest marks a malformed request (body, parameters). Its
	// message is safe to show to the client verbatim.
	KindBadRequest

	// KindCSRFTokenMismatch marks a state-changing request rejected because
	// its anti-forgery token did not match.
	KindCSRFTokenMismatch
)

// String returns a stable, log-friendly name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindCSRFTokenMismatch:
		return "csrf_token_mismatch"
	default:
		return "unclassified"
	}
}

// ErrBadCSRFToken is the sentinel collaborators wrap (or return directly)
// when an anti-forgery token check fails. [From] maps it to
// [KindCSRFTokenMismatch].
var ErrBadCSRFToken = errors.New("invalid csrf token")

// Error is a classified pipeline failure.
type Error struct {
	// Kind selects the user-facing message.
	Kind Kind

	// Status is the HTTP status declared by the failing stage. Zero means
	// no status was declared; see [Error.StatusCode].
	Status int

	// Message is the human-readable description. For [KindBadRequest] it is
	// sent to the client as is.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return http.StatusText(e.StatusCode())
	}
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode returns the declared status, or 500 when none was declared.
func (e *Error) StatusCode() int {
	if e.Status == 0 {
		return http.StatusInternalServerError
	}
	return e.Status
}

// BadRequest returns a [KindBadRequest] failure with status 400. msg is shown
// to the client.
func BadRequest(msg string, cause error) *Error {
	return &Error{
		Kind:    KindBadRequest,
		Status:  http.StatusBadRequest,
		Message: msg,
		Err:     cause,
	}
}

// CSRFTokenMismatch returns a [KindCSRFTokenMismatch] failure with status 403.
func CSRFTokenMismatch(cause error) *Error {
	if cause == nil {
		cause = ErrBadCSRFToken
	}
	return &Error{
		Kind:   KindCSRFTokenMismatch,
		Status: http.StatusForbidden,
		Err:    cause,
	}
}

// WithStatus returns an unclassified failure that declares status.
func WithStatus(status int, cause error) *Error {
	return &Error{
		Kind:   KindUnclassified,
		Status: status,
		Err:    cause,
	}
}

// Unclassified returns an unclassified failure without a declared status.
func Unclassified(cause error) *Error {
	return &Error{
		Kind: KindUnclassified,
		Err:  cause,
	}
}
