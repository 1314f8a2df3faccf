//go:build wireinject
// +build wireinject

package main

import (
	"eia-trends/internal/app"
	"eia-trends/internal/provider"
	"eia-trends/internal/saver"

	"github.com/google/wire"
)

// App holds application dependencies built by Wire.
type App struct {
	Config *app.Config
	Source provider.SeriesProvider
	Saver  saver.TableSaver
}

// InitializeApp builds App (Config + SeriesProvider + TableSaver) via Wire.
// Caller must call a.Source.Close() when done.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideTableSaver,
		app.ProvideEIAProvider,
		wire.Bind(new(provider.SeriesProvider), new(*provider.EIAProvider)),
		wire.Struct(new(App), "Config", "Source", "Saver"),
	)
	return nil, nil
}
