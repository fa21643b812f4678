package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the environment-based configuration of the CLI. All variables
// carry the STRIDE prefix, e.g. STRIDE_CHECKPOINT_DIR.
type Config struct {
	CheckpointDir    string `envconfig:"CHECKPOINT_DIR" default:"checkpoints"`
	CheckpointSuffix string `envconfig:"CHECKPOINT_SUFFIX" default:""`
	SaveInterval     int    `envconfig:"SAVE_INTERVAL" default:"1"`
	MonitorPort      int    `envconfig:"MONITOR_PORT" default:"0"`
	RecordPath       string `envconfig:"RECORD_PATH" default:""`
}

// LoadConfig reads the configuration from a .env file, when present, and the
// process environment.
func LoadConfig() (Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	var cfg Config

	err := envconfig.Process("STRIDE", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("read configuration: %w", err)
	}

	err = validateConfig(cfg)
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validateConfig(cfg Config) error {
	if cfg.SaveInterval < 1 {
		return fmt.Errorf("save interval must be positive, got %d",
			cfg.SaveInterval)
	}

	if cfg.MonitorPort < 0 {
		return fmt.Errorf("monitor port must be non-negative, got %d",
			cfg.MonitorPort)
	}

	return nil
}
