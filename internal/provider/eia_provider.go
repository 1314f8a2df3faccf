package provider

import (
	"time"

	"eia-trends/internal/provider/eia"
)

// EIAProvider is a SeriesProvider implementation backed by the EIA v2
// API. It embeds *eia.Client to expose fetch capabilities with minimal
// boilerplate.
type EIAProvider struct {
	*eia.Client
}

// NewEIAProvider creates a new EIA-backed SeriesProvider.
func NewEIAProvider(baseURL, apiKey string) (*EIAProvider, error) {
	client, err := eia.NewClient(baseURL, apiKey)
	if err != nil {
		return nil, err
	}
	return &EIAProvider{
		Client: client,
	}, nil
}

// GetName returns provider name
func (p *EIAProvider) GetName() string {
	return "EIA"
}

// SetCooldown overrides the pause between series requests.
func (p *EIAProvider) SetCooldown(d time.Duration) {
	if p.Client != nil {
		p.Client.Cooldown = d
	}
}

// SetLogFunc sets fan-in logger. When set, the client sends fetch
// progress there instead of slog.
func (p *EIAProvider) SetLogFunc(fn eia.LogFunc) {
	if p.Client != nil {
		p.Client.LogFunc = fn
	}
}
