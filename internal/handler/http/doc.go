// Package http implements the ingress pipeline of the gateway.
//
// Every request passes through the same ordered chain: trace ID, panic
// recovery, metrics, cross-origin policy, body decoding, method override,
// access logging, and finally the router dispatcher. The dispatcher hands
// /api/v1 to the mounted API router, answers /hello with a fixed greeting and
// redirects everything else to the companion static site. Failures from any
// stage, including the API router, are rendered by a single error responder.
package http
