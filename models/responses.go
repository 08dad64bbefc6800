package models

// GreetingResponse is the payload of the greeting route.
type GreetingResponse struct {
	Text string `json:"text"`
}

// NotFoundResponse is returned when no stage of the pipeline produced a
// response.
type NotFoundResponse struct {
	Error string `json:"error"`
}

// ErrorResponse is the only shape a failure is ever rendered in. The
// message is chosen by failure kind and never carries internal detail for
// unclassified failures.
type ErrorResponse struct {
	ErrorMessage string `json:"errorMessage"`
}

// VersionResponse reports the running gateway version.
type VersionResponse struct {
	Version string `json:"version"`
}

// HealthResponse reports the state of the gateway's backing services.
type HealthResponse struct {
	Status string `json:"status"`
}
