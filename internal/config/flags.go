package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line into a *StructuredConfig.
//
// Flags:
//
//	-https turn on the TLS listener on port 443
//	-p plain HTTP port
//	-ca-bundle CA bundle path
//	-ca-crt certificate path
//	-ssl-cert-key private key path
//	-http-redirect-only make the plain HTTP listener redirect-only when -https is set
//	-metrics-address metrics listener address in format [host]:[port]
//	-shutdown-timeout graceful shutdown timeout (e.g., "10s")
//	-locale locale of user-facing messages (e.g., "ru", "en")
//	-version reported application version
//	-d database DSN
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlags(args)
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("gateway", flag.ContinueOnError)

	var metricsAddress NetAddress
	var httpsOn, httpRedirectOnly bool
	var port int
	var caBundle, caCert, certKey string
	var shutdownTimeout time.Duration
	var locale, version string
	var databaseDSN string
	var jsonConfigPath string

	fs.BoolVar(&httpsOn, "https", false, "Serve HTTPS on port 443 next to plain HTTP")
	fs.IntVar(&port, "p", 0, "Plain HTTP port")
	fs.StringVar(&caBundle, "ca-bundle", "", "CA bundle path")
	fs.StringVar(&caCert, "ca-crt", "", "Certificate path")
	fs.StringVar(&certKey, "ssl-cert-key", "", "Private key path")
	fs.BoolVar(&httpRedirectOnly, "http-redirect-only", false, "Plain HTTP listener only redirects when HTTPS is on")
	fs.Var(&metricsAddress, "metrics-address", "Metrics listener address host:port")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.StringVar(&locale, "locale", "", "Locale of user-facing messages")
	fs.StringVar(&version, "version", "", "Reported application version")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Version: version,
			Locale:  locale,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPSOn:          httpsOn,
			Port:             port,
			CABundlePath:     caBundle,
			CertPath:         caCert,
			KeyPath:          certKey,
			HTTPRedirectOnly: httpRedirectOnly,
			MetricsAddress:   metricsAddress.String(),
			ShutdownTimeout:  shutdownTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
