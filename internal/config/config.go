package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAddr            = ":8080"
	DefaultShutdownTimeout = 5 * time.Second
	DefaultRateLimit       = 5.0
	DefaultRateBurst       = 10
	DefaultShareTTL        = 30 * 24 * time.Hour
	DefaultMaxUploadBytes  = 10 << 20 // 10MB
	DefaultBatchLimit      = 1000
)

// Config is built once at startup and handed to the server.
type Config struct {
	Addr            string        `yaml:"addr" validate:"required"`
	TLSCert         string        `yaml:"tls_cert" validate:"required_with=TLSKey"`
	TLSKey          string        `yaml:"tls_key" validate:"required_with=TLSCert"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
	RateLimit       float64       `yaml:"rate_limit" validate:"gt=0"`
	RateBurst       int           `yaml:"rate_burst" validate:"gte=1"`
	ShareKey        string        `yaml:"-"`
	ShareTTL        time.Duration `yaml:"share_ttl" validate:"gt=0"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" validate:"gt=0"`
	BatchLimit      int           `yaml:"batch_limit" validate:"gte=1"`
}

func Default() Config {
	return Config{
		Addr:            DefaultAddr,
		ShutdownTimeout: DefaultShutdownTimeout,
		RateLimit:       DefaultRateLimit,
		RateBurst:       DefaultRateBurst,
		ShareTTL:        DefaultShareTTL,
		MaxUploadBytes:  DefaultMaxUploadBytes,
		BatchLimit:      DefaultBatchLimit,
	}
}

// Load layers defaults, the optional YAML file at path, a .env file in the
// working directory and the process environment, in that order.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("TLS_CERT"); v != "" {
		cfg.TLSCert = v
	}
	if v := os.Getenv("TLS_KEY"); v != "" {
		cfg.TLSKey = v
	}
	cfg.ShareKey = os.Getenv("TOKEN_KEY")

	if v := os.Getenv("RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT: %w", err)
		}
		cfg.RateLimit = f
	}
	if v := os.Getenv("RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RATE_BURST: %w", err)
		}
		cfg.RateBurst = n
	}
	if v := os.Getenv("SHARE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SHARE_TTL: %w", err)
		}
		cfg.ShareTTL = d
	}
	if v := os.Getenv("BATCH_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BATCH_LIMIT: %w", err)
		}
		cfg.BatchLimit = n
	}
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MAX_UPLOAD_BYTES: %w", err)
		}
		cfg.MaxUploadBytes = n
	}
	return nil
}
