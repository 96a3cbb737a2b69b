package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// Command line flags and positional arguments take precedence over it.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Log contains logger settings
	Log struct {
		// File receives a rotated copy of the log when set
		File string `env:"LOG_FILE" env-default:"" yaml:"file"`
		// MaxSizeMB is the size at which the log file is rotated
		MaxSizeMB int `env:"LOG_MAX_SIZE_MB" env-default:"5" yaml:"maxSizeMB"`
		// MaxBackups is the number of rotated log files to keep
		MaxBackups int `env:"LOG_MAX_BACKUPS" env-default:"3" yaml:"maxBackups"`
	} `yaml:"log"`

	// Stats contains the defaults of a statistics run
	Stats struct {
		// TopSize is the number of entries listed per top section
		TopSize int `env:"STATS_TOP_SIZE" env-default:"5" yaml:"topSize"`
		// InputPath is the corpus read when no input argument is given
		InputPath string `env:"STATS_INPUT_PATH" env-default:"Input.txt" yaml:"inputPath"`
		// OutputPath is the report written when no output argument is given
		OutputPath string `env:"STATS_OUTPUT_PATH" env-default:"Output.txt" yaml:"outputPath"`
	} `yaml:"stats"`

	// MetricsFile receives prometheus metrics of the run in textfile format when set
	MetricsFile string `env:"METRICS_FILE" env-default:"" yaml:"metricsFile"`
	// CPUProfile receives a CPU profile of the run when set
	CPUProfile string `env:"CPU_PROFILE" env-default:"" yaml:"cpuProfile"`
}

// Load receives the path for yaml config file and returns a filled Config struct.
// A missing file is not an error: configuration then comes from the
// environment and defaults only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath != "" {
		_, err := os.Stat(configPath)
		switch {
		case err == nil:
			if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
				return nil, fmt.Errorf("could not read config: %w", err)
			}

			return &cfg, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("could not stat config: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config from environment: %w", err)
	}

	return &cfg, nil
}
