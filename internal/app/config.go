package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ExpeditionPath string // hcl files

	LogFormat  string
	LogLevel   string
	StatusPort int
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ExpeditionPath == "" {
		return nil, errors.New("ExpeditionPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
