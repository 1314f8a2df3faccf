package provider

import "eia-trends/internal/model"

// SeriesProvider is the abstraction used by the application when
// fetching series data. Implementations are responsible for their own
// request pacing and resource cleanup.
type SeriesProvider interface {
	GetName() string
	FetchAll(requests []model.SeriesRequest) (*model.SeriesData, error)
	Close() error
}
