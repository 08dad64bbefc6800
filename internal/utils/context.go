// Package utils provides general-purpose helper utilities
// used across different parts of the gateway.
// Includes tools for working with context, type-safe keys,
// HTTP response writing and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/eth2phone-gateway/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// DecodedBodyCtxKey is the key under which the body decoding stage stores
// the [models.DecodedBody] of the request.
var DecodedBodyCtxKey = contextKey("decodedBody")

// OriginalMethodCtxKey is the key under which the method override stage
// stores the method the request physically arrived with.
var OriginalMethodCtxKey = contextKey("originalMethod")

// WithDecodedBody returns a copy of ctx carrying body.
func WithDecodedBody(ctx context.Context, body models.DecodedBody) context.Context {
	return context.WithValue(ctx, DecodedBodyCtxKey, body)
}

// GetDecodedBodyFromContext retrieves the decoded request body.
//
// Returns ok == false when the body decoding stage did not run for this
// request.
//
// Example usage:
//
//	body, ok := utils.GetDecodedBodyFromContext(r.Context())
//	if ok && body.JSON != nil {
//	    // use body.JSON
//	}
func GetDecodedBodyFromContext(ctx context.Context) (models.DecodedBody, bool) {
	body, ok := ctx.Value(DecodedBodyCtxKey).(models.DecodedBody)
	return body, ok
}

// WithOriginalMethod returns a copy of ctx remembering the method the
// request arrived with before an override was applied.
func WithOriginalMethod(ctx context.Context, method string) context.Context {
	return context.WithValue(ctx, OriginalMethodCtxKey, method)
}

// GetOriginalMethodFromContext returns the pre-override method. ok is false
// when no override was applied.
func GetOriginalMethodFromContext(ctx context.Context) (string, bool) {
	method, ok := ctx.Value(OriginalMethodCtxKey).(string)
	return method, ok
}

// RequestMethodCtxKey is the key of the [RequestMethod] slot shared by the
// stages of one request.
var RequestMethodCtxKey = contextKey("requestMethod")

// RequestMethod is filled in while a request travels down the pipeline so
// that outer stages can read the method it was finally routed with once the
// inner stages return.
type RequestMethod struct {
	// Effective is the method the request is routed with.
	Effective string

	// Original is the wire method when an override was applied, otherwise
	// empty.
	Original string
}

// WithRequestMethod returns a copy of ctx carrying slot.
func WithRequestMethod(ctx context.Context, slot *RequestMethod) context.Context {
	return context.WithValue(ctx, RequestMethodCtxKey, slot)
}

// GetRequestMethodFromContext returns the slot installed by an outer stage.
func GetRequestMethodFromContext(ctx context.Context) (*RequestMethod, bool) {
	slot, ok := ctx.Value(RequestMethodCtxKey).(*RequestMethod)
	return slot, ok && slot != nil
}
