package main

import (
	"log/slog"
	"os"

	"eia-trends/internal/app"
	"eia-trends/internal/slogx"
)

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	defer a.Source.Close()

	cfg := a.Config
	slog.SetDefault(slogx.NewDefault(cfg.LogLevel))
	slog.Info("using data source", "provider", a.Source.GetName())

	if err := app.Run(cfg, a.Source, a.Saver); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}
