package server

import (
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/eth2phone-gateway/internal/logger"
)

const readHeaderTimeout = 10 * time.Second

const (
	protocolHTTP    = "http"
	protocolHTTPS   = "https"
	protocolMetrics = "metrics"
)

// listener is one bound socket and the server answering on it.
type listener struct {
	protocol string
	ln       net.Listener
	server   *http.Server
}

func bindListener(protocol, address string, handler http.Handler, logger *logger.Logger) (*listener, error) {
	ln, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s on %q: %w", ErrBindingListener, protocol, address, err)
	}

	return &listener{
		protocol: protocol,
		ln:       ln,
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			ErrorLog:          stdlog.New(logger, "", 0),
		},
	}, nil
}

func (l *listener) port() int {
	if addr, ok := l.ln.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}

// serve blocks until the server is shut down. A graceful shutdown is not an
// error.
func (l *listener) serve() error {
	var err error
	if l.server.TLSConfig != nil {
		err = l.server.ServeTLS(l.ln, "", "")
	} else {
		err = l.server.Serve(l.ln)
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("%s listener: %w", l.protocol, err)
}
