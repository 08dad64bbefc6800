package server

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/eth2phone-gateway/internal/config"
	"github.com/MKhiriev/eth2phone-gateway/internal/handler"
	"github.com/MKhiriev/eth2phone-gateway/internal/logger"
	"github.com/MKhiriev/eth2phone-gateway/internal/mock"
	"github.com/MKhiriev/eth2phone-gateway/internal/observability"
	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	greetingBody = `{"text":"Hello, Ethereum!"}`
	apiBody      = `{"api":true}`
)

func newTestHandlers(t *testing.T) *handler.Handlers {
	t.Helper()
	ctrl := gomock.NewController(t)

	api := mock.NewMockAPIRouter(ctrl)
	api.EXPECT().Mount("/api/v1", gomock.Any()).Return(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(apiBody))
	})).AnyTimes()

	handlers, err := handler.NewHandlers(api, config.App{Locale: "ru"}, nil, logger.Nop())
	require.NoError(t, err)
	return handlers
}

// newTestClient returns a client that does not follow redirects and trusts
// any certificate.
func newTestClient() *resty.Client {
	return resty.New().
		SetTimeout(5 * time.Second).
		SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}). //nolint:gosec // self-signed test certificate
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))
}

// startServer runs s until the test ends and returns a channel with the
// result of run.
func startServer(t *testing.T, s *server) <-chan error {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)

	go func() {
		result <- s.run(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		select {
		case <-result:
		case <-time.After(5 * time.Second):
			t.Error("server did not stop in time")
		}
	})

	return result
}

func listenerURL(t *testing.T, s *server, protocol string) string {
	t.Helper()
	for _, l := range s.listeners {
		if l.protocol == protocol {
			scheme := "http"
			if protocol == protocolHTTPS {
				scheme = "https"
			}
			return fmt.Sprintf("%s://127.0.0.1:%d", scheme, l.port())
		}
	}
	t.Fatalf("no %s listener", protocol)
	return ""
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{}, nil, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, config.Server{}, nil, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_HTTPOnly(t *testing.T) {
	metrics := observability.NewMetrics()
	s, err := newServer(newTestHandlers(t), config.Server{Port: 0, ShutdownTimeout: time.Second}, metrics, logger.Nop(), nil, "")
	require.NoError(t, err)
	require.Len(t, s.listeners, 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ListenersUp.WithLabelValues(protocolHTTP)))

	startServer(t, s)
	client := newTestClient()
	base := listenerURL(t, s, protocolHTTP)

	resp, err := client.R().Get(base + "/hello")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, greetingBody, resp.String())

	resp, err = client.R().Get(base + "/api/v1/anything")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, apiBody, resp.String())

	resp, err = client.R().Get(base + "/foo?x=1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode())
	assert.Equal(t, "https://eth2phone.github.io/foo?x=1", resp.Header().Get("Location"))
}

func TestServer_HTTPSAndHTTP(t *testing.T) {
	tests := []struct {
		name              string
		redirectOnly      bool
		wantPlainStatus   int
		wantPlainBody     string
		wantPlainLocation string
	}{
		{
			name:            "plain listener serves the full pipeline",
			wantPlainStatus: http.StatusOK,
			wantPlainBody:   greetingBody,
		},
		{
			name:              "plain listener only redirects",
			redirectOnly:      true,
			wantPlainStatus:   http.StatusFound,
			wantPlainLocation: "https://eth2phone.github.io/hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			loader := mock.NewMockFileLoader(ctrl)
			expectTLSFiles(loader, generateTLSMaterial(t))

			cfg := tlsServerConfig()
			cfg.HTTPRedirectOnly = tt.redirectOnly

			s, err := newServer(newTestHandlers(t), cfg, nil, logger.Nop(), loader, "127.0.0.1:0")
			require.NoError(t, err)
			require.Len(t, s.listeners, 2)

			startServer(t, s)
			client := newTestClient()

			resp, err := client.R().Get(listenerURL(t, s, protocolHTTPS) + "/hello")
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode())
			assert.JSONEq(t, greetingBody, resp.String())
			require.NotNil(t, resp.RawResponse.TLS)
			assert.Len(t, resp.RawResponse.TLS.PeerCertificates, 2, "leaf and bundle certificate are served")

			resp, err = client.R().Get(listenerURL(t, s, protocolHTTP) + "/hello")
			require.NoError(t, err)
			assert.Equal(t, tt.wantPlainStatus, resp.StatusCode())
			if tt.wantPlainBody != "" {
				assert.JSONEq(t, tt.wantPlainBody, resp.String())
			}
			if tt.wantPlainLocation != "" {
				assert.Equal(t, tt.wantPlainLocation, resp.Header().Get("Location"))
			}
		})
	}
}

func TestServer_TLSLoadFailureBindsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mock.NewMockFileLoader(ctrl)
	loader.EXPECT().ReadFile(testBundlePath).Return(nil, fmt.Errorf("permission denied"))

	s, err := newServer(newTestHandlers(t), tlsServerConfig(), nil, logger.Nop(), loader, "127.0.0.1:0")

	require.ErrorIs(t, err, ErrLoadingTLSMaterial)
	assert.Nil(t, s)
}

func TestServer_BindFailure(t *testing.T) {
	occupied, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer occupied.Close()

	port := occupied.Addr().(*net.TCPAddr).Port
	metrics := observability.NewMetrics()

	s, err := newServer(newTestHandlers(t), config.Server{Port: port}, metrics, logger.Nop(), nil, "")

	require.ErrorIs(t, err, ErrBindingListener)
	assert.Nil(t, s)
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.ListenersUp.WithLabelValues(protocolHTTP)))
}

func TestServer_SecondBindFailureReleasesFirst(t *testing.T) {
	occupied, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer occupied.Close()

	ctrl := gomock.NewController(t)
	loader := mock.NewMockFileLoader(ctrl)
	expectTLSFiles(loader, generateTLSMaterial(t))

	cfg := tlsServerConfig()
	cfg.Port = occupied.Addr().(*net.TCPAddr).Port

	s, err := newServer(newTestHandlers(t), cfg, nil, logger.Nop(), loader, "127.0.0.1:0")

	require.ErrorIs(t, err, ErrBindingListener)
	assert.Nil(t, s)
}

func TestServer_MetricsListener(t *testing.T) {
	metrics := observability.NewMetrics()
	cfg := config.Server{MetricsAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}

	s, err := newServer(newTestHandlers(t), cfg, metrics, logger.Nop(), nil, "")
	require.NoError(t, err)
	require.Len(t, s.listeners, 2)

	startServer(t, s)

	resp, err := newTestClient().R().Get(listenerURL(t, s, protocolMetrics) + "/metrics")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, resp.String(), `gateway_listener_up{protocol="metrics"} 1`)
}

func TestServer_ShutdownStopsRun(t *testing.T) {
	s, err := newServer(newTestHandlers(t), config.Server{ShutdownTimeout: time.Second}, nil, logger.Nop(), nil, "")
	require.NoError(t, err)

	result := make(chan error, 1)
	go func() {
		result <- s.run(context.Background())
	}()

	s.Shutdown()
	s.Shutdown()

	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after Shutdown")
	}
}

func TestServer_ContextCancelStopsRun(t *testing.T) {
	s, err := newServer(newTestHandlers(t), config.Server{ShutdownTimeout: time.Second}, nil, logger.Nop(), nil, "")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() {
		result <- s.run(ctx)
	}()
	cancel()

	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}

	_, err = net.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", s.listeners[0].port()))
	assert.Error(t, err, "listener must be closed after shutdown")
}
