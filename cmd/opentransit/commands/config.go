package commands

import (
	"github.com/rs/zerolog/log"

	"github.com/opentransit/engine"
)

// loadConfig reads --config, or returns the defaults when it is unset.
func loadConfig() (engine.RunConfig, error) {
	if configPath == "" {
		return engine.DefaultRunConfig(), nil
	}
	cfg, err := engine.LoadRunConfig(configPath)
	if err != nil {
		return engine.RunConfig{}, err
	}
	log.Debug().Str("path", configPath).Msg("Loaded run config")
	return cfg, nil
}
