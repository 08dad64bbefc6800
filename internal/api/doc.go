// Package api is the default router mounted under the gateway's API prefix.
//
// It reports the running version and the health of the backing database.
// Failures are handed to the pipeline's error responder through
// httperr.Handle.
package api
