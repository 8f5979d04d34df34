package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Input struct {
		Dir       string `yaml:"dir" default:"."`
		Delimiter string `yaml:"delimiter" default:"," validate:"len=1"`
	} `yaml:"input"`
	Output struct {
		Dir string `yaml:"dir" default:"FXData" validate:"required"`
	} `yaml:"output"`
	CurrencyPairs []string `yaml:"currency_pairs" default:"[\"EURUSD\"]" validate:"min=1,dive,required,alphanum"`
	Years         []string `yaml:"years" default:"[\"2018\",\"2019\"]" validate:"min=1,dive,numeric,len=4"`
	Schedule      struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Recorder struct {
		ManifestFile string `yaml:"manifest_file"`
	} `yaml:"recorder"`
	Log struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=trace debug info warn error"`
		Format string `yaml:"format" default:"console" validate:"oneof=console json"`
		Output string `yaml:"output" default:"stderr"`
	} `yaml:"log"`
}

// Load reads config from a YAML file, then applies .env and environment
// variable overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// .env is optional
	_ = godotenv.Load()

	if v := os.Getenv("FX_CURRENCY_PAIRS"); v != "" {
		cfg.CurrencyPairs = splitList(v)
	}
	if v := os.Getenv("FX_YEARS"); v != "" {
		cfg.Years = splitList(v)
	}
	if v := os.Getenv("FX_INPUT_DIR"); v != "" {
		cfg.Input.Dir = v
	}
	if v := os.Getenv("FX_OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("FX_DELIMITER"); v != "" {
		cfg.Input.Delimiter = v
	}
	if v := os.Getenv("FX_SCHEDULE"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("FX_MANIFEST_FILE"); v != "" {
		cfg.Recorder.ManifestFile = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}

	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DelimiterRune returns the input field delimiter.
func (c *Config) DelimiterRune() rune {
	return []rune(c.Input.Delimiter)[0]
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
