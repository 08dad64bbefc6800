package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/eth2phone-gateway/internal/config"
	"github.com/MKhiriev/eth2phone-gateway/internal/handler"
	"github.com/MKhiriev/eth2phone-gateway/internal/logger"
	"github.com/MKhiriev/eth2phone-gateway/internal/observability"
	"golang.org/x/sync/errgroup"
)

const httpsPort = 443

type server struct {
	listeners []*listener

	shutdownTimeout time.Duration
	shutdownOnce    sync.Once
	done            chan struct{}

	metrics *observability.Metrics
	logger  *logger.Logger
}

// NewServer loads the TLS material when HTTPS is on and binds every
// listener. A failure to read TLS files or to bind a port is returned as an
// error and nothing stays bound.
func NewServer(handlers *handler.Handlers, cfg config.Server, metrics *observability.Metrics, logger *logger.Logger) (Server, error) {
	s, err := newServer(handlers, cfg, metrics, logger, osFileLoader{}, fmt.Sprintf(":%d", httpsPort))
	if err != nil {
		return nil, err
	}
	return s, nil
}

func newServer(
	handlers *handler.Handlers,
	cfg config.Server,
	metrics *observability.Metrics,
	logger *logger.Logger,
	loader FileLoader,
	httpsAddress string,
) (*server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	s := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		done:            make(chan struct{}),
		metrics:         metrics,
		logger:          logger,
	}

	pipeline := handlers.HTTP.Init()
	httpAddress := fmt.Sprintf(":%d", cfg.Port)

	if cfg.HTTPSOn {
		tlsConfig, err := loadTLSConfig(loader, cfg)
		if err != nil {
			return nil, err
		}

		if err = s.bind(protocolHTTPS, httpsAddress, pipeline); err != nil {
			return nil, err
		}
		s.listeners[len(s.listeners)-1].server.TLSConfig = tlsConfig

		var plain http.Handler = pipeline
		if cfg.HTTPRedirectOnly {
			plain = handlers.HTTP.RedirectOnly()
		}
		if err = s.bind(protocolHTTP, httpAddress, plain); err != nil {
			s.closeListeners()
			return nil, err
		}
	} else if err := s.bind(protocolHTTP, httpAddress, pipeline); err != nil {
		return nil, err
	}

	if cfg.MetricsAddress != "" && metrics != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		if err := s.bind(protocolMetrics, cfg.MetricsAddress, mux); err != nil {
			s.closeListeners()
			return nil, err
		}
	}

	return s, nil
}

func (s *server) bind(protocol, address string, handler http.Handler) error {
	l, err := bindListener(protocol, address, handler, s.logger)
	if err != nil {
		return err
	}

	s.listeners = append(s.listeners, l)
	s.logger.Info().Str("protocol", protocol).Int("port", l.port()).Msg("server is up")
	s.setListenerUp(protocol, 1)

	return nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		for _, l := range s.listeners {
			if err := l.server.Shutdown(ctx); err != nil {
				s.logger.Err(err).Str("protocol", l.protocol).Msg("error shutting down listener")
			}
			s.setListenerUp(l.protocol, 0)
		}

		close(s.done)
	})
}

// run serves every listener until ctx is done, Shutdown is called, or one
// listener fails. The first failure stops the remaining listeners.
func (s *server) run(ctx context.Context) error {
	if len(s.listeners) == 0 {
		return errNoServersAreCreated
	}

	g, gctx := errgroup.WithContext(ctx)

	for _, l := range s.listeners {
		s.logger.Info().Str("protocol", l.protocol).Int("port", l.port()).Msg("launching listener")
		g.Go(l.serve)
	}

	// listen for stop signals
	g.Go(func() error {
		select {
		case <-gctx.Done():
			s.Shutdown()
		case <-s.done:
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) closeListeners() {
	for _, l := range s.listeners {
		_ = l.ln.Close()
		s.setListenerUp(l.protocol, 0)
	}
	s.listeners = nil
}

func (s *server) setListenerUp(protocol string, value float64) {
	if s.metrics == nil {
		return
	}
	s.metrics.ListenersUp.WithLabelValues(protocol).Set(value)
}
