package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors the flat key layout of the deployment JSON
// file, e.g.
//
//	{"HTTPS_ON": true, "port": 80, "CA_BUNDLE": "/etc/ssl/bundle.crt",
//	 "CA_CRT": "/etc/ssl/site.crt", "SSL_CERT_KEY": "/etc/ssl/site.key"}
type StructuredJSONConfig struct {
	HTTPSOn          bool     `json:"HTTPS_ON"`
	Port             int      `json:"port"`
	CABundle         string   `json:"CA_BUNDLE"`
	CACert           string   `json:"CA_CRT"`
	SSLCertKey       string   `json:"SSL_CERT_KEY"`
	HTTPRedirectOnly bool     `json:"HTTP_REDIRECT_ONLY"`
	MetricsAddress   string   `json:"METRICS_ADDRESS,omitempty"`
	ShutdownTimeout  Duration `json:"SHUTDOWN_TIMEOUT,omitempty"`
	Locale           string   `json:"APP_LOCALE,omitempty"`
	Version          string   `json:"APP_VERSION,omitempty"`
	DatabaseURI      string   `json:"DATABASE_URI,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.Version,
			Locale:  jsonCfg.Locale,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.DatabaseURI,
			},
		},
		Server: Server{
			HTTPSOn:          jsonCfg.HTTPSOn,
			Port:             jsonCfg.Port,
			CABundlePath:     jsonCfg.CABundle,
			CertPath:         jsonCfg.CACert,
			KeyPath:          jsonCfg.SSLCertKey,
			HTTPRedirectOnly: jsonCfg.HTTPRedirectOnly,
			MetricsAddress:   jsonCfg.MetricsAddress,
			ShutdownTimeout:  time.Duration(jsonCfg.ShutdownTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
