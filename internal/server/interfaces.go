package server

//go:generate mockgen -source=interfaces.go -destination=../mock/server_mock.go -package=mock

// Server defines the lifecycle contract of the listener set managed by this
// package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer serves on every bound listener and blocks until the process
	// is signalled, Shutdown is called, or a listener fails.
	RunServer() error

	// Shutdown gracefully stops every listener. It is safe to call more
	// than once.
	Shutdown()
}

// FileLoader reads TLS material from storage.
type FileLoader interface {
	ReadFile(name string) ([]byte, error)
}
