package server

import (
	"crypto/tls"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/MKhiriev/eth2phone-gateway/internal/config"
)

type osFileLoader struct{}

func (osFileLoader) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// loadTLSConfig reads the key pair and the CA bundle. The served chain is
// the leaf certificate followed by every certificate of the bundle.
func loadTLSConfig(loader FileLoader, cfg config.Server) (*tls.Config, error) {
	bundle, err := loader.ReadFile(cfg.CABundlePath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading CA bundle %q: %w", ErrLoadingTLSMaterial, cfg.CABundlePath, err)
	}

	certPEM, err := loader.ReadFile(cfg.CertPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading certificate %q: %w", ErrLoadingTLSMaterial, cfg.CertPath, err)
	}

	keyPEM, err := loader.ReadFile(cfg.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading key %q: %w", ErrLoadingTLSMaterial, cfg.KeyPath, err)
	}

	certificate, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing key pair: %w", ErrLoadingTLSMaterial, err)
	}

	intermediates := certificatesFromPEM(bundle)
	if len(intermediates) == 0 {
		return nil, fmt.Errorf("%w: no certificates in CA bundle %q", ErrLoadingTLSMaterial, cfg.CABundlePath)
	}
	certificate.Certificate = append(certificate.Certificate, intermediates...)

	return &tls.Config{
		Certificates: []tls.Certificate{certificate},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

func certificatesFromPEM(data []byte) [][]byte {
	var certs [][]byte
	for {
		var block *pem.Block
		block, data = pem.Decode(data)
		if block == nil {
			return certs
		}
		if block.Type == "CERTIFICATE" {
			certs = append(certs, block.Bytes)
		}
	}
}
