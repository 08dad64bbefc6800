// Package server wires and runs the gateway's listeners.
//
// With HTTPS enabled it binds a TLS listener on port 443 next to the plain
// HTTP listener on the configured port; otherwise only the plain listener
// exists. An optional metrics listener exposes Prometheus metrics. All
// listeners are bound synchronously when the server is created, served
// concurrently, and shut down gracefully together.
package server
