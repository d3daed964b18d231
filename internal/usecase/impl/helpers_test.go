package impl

import (
	"io"
	"log/slog"
	"time"

	"restomap/config"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = "develop"
	cfg.Env.ServiceName = "restomap"
	cfg.Env.InstanceID = "instance-a"
	cfg.Places = &config.PlacesConfig{MinQueryLength: 3}

	return cfg
}
