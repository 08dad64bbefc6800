package api

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/pinger_mock.go -package=mock

// Pinger checks a backing service.
type Pinger interface {
	Ping(ctx context.Context) error
}
