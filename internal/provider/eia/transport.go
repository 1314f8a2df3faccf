package eia

import (
	"net/http"
	"time"
)

// baseTransportConfig returns the shared HTTP transport configuration
// used by EIA clients.
func baseTransportConfig() *http.Transport {
	return &http.Transport{
		ResponseHeaderTimeout: 30 * time.Second,
		IdleConnTimeout:       0,
		TLSHandshakeTimeout:   10 * time.Second,
		DisableKeepAlives:     true,
		MaxIdleConns:          0,
		MaxIdleConnsPerHost:   0,
	}
}

// newHTTPClient creates an HTTP client configured for EIA requests.
// The source API has no timeout at all; an explicit one is set here
// so a stalled call cannot hang the run.
func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: baseTransportConfig(),
		Timeout:   60 * time.Second,
	}
}
