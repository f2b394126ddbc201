package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"smartystreets-api/pkg/logger"
	"smartystreets-api/pkg/smartystreets"
)

type Config struct {
	Env    string `yaml:"env"`
	Server struct {
		Port            int           `yaml:"port" validate:"required,gt=0,lte=65535"`
		AllowedOrigins  []string      `yaml:"allowed_origins" validate:"dive,url"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gte=0"`
	} `yaml:"server"`
	SmartyStreets struct {
		AuthID          string        `yaml:"auth_id" validate:"required"`
		AuthToken       string        `yaml:"auth_token" validate:"required"`
		Host            string        `yaml:"host" validate:"omitempty,url"`
		Proxy           string        `yaml:"proxy" validate:"omitempty,url"`
		IncludeInvalid  bool          `yaml:"include_invalid"`
		StandardizeOnly bool          `yaml:"standardize_only"`
		Timeout         time.Duration `yaml:"timeout" validate:"gte=0"`
	} `yaml:"smartystreets"`
	Log struct {
		Level string `yaml:"level" validate:"omitempty,oneof=DEBUG INFO ERROR debug info error"`
	} `yaml:"log"`
	JWT struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`
}

var validate = validator.New()

// LoadConfig reads the YAML file at path, applies environment overrides and
// defaults, then validates the result. A missing file is not an error so
// the configuration can come from the environment alone.
func LoadConfig(path string) (*Config, error) {
	cfg, err := ReadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}
	return cfg, nil
}

// ReadConfig is LoadConfig without validation, for callers that fill in
// settings of their own before using the result. An empty path skips the file.
func ReadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			if logger.GlobalLogger != nil {
				logger.GlobalLogger.Printf("Config file not found, using environment only: path=%s", path)
			}
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %v", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config: %v", err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// ValidateClient checks only the smartystreets section.
func (c *Config) ValidateClient() error {
	if err := validate.Struct(&c.SmartyStreets); err != nil {
		return fmt.Errorf("invalid smartystreets config: %v", err)
	}
	return nil
}

// Override with environment variables if set
func applyEnv(cfg *Config) error {
	if env := os.Getenv("ENV"); env != "" {
		cfg.Env = env
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid SERVER_PORT value: %v", err)
		}
		cfg.Server.Port = portNum
	}
	if id := os.Getenv("SMARTY_AUTH_ID"); id != "" {
		cfg.SmartyStreets.AuthID = id
	}
	if token := os.Getenv("SMARTY_AUTH_TOKEN"); token != "" {
		cfg.SmartyStreets.AuthToken = token
	}
	if host := os.Getenv("SMARTY_HOST"); host != "" {
		cfg.SmartyStreets.Host = host
	}
	if proxy := os.Getenv("SMARTY_PROXY"); proxy != "" {
		cfg.SmartyStreets.Proxy = proxy
	}
	if v := os.Getenv("SMARTY_INCLUDE_INVALID"); v != "" {
		cfg.SmartyStreets.IncludeInvalid = v == "true"
	}
	if v := os.Getenv("SMARTY_STANDARDIZE_ONLY"); v != "" {
		cfg.SmartyStreets.StandardizeOnly = v == "true"
	}
	if v := os.Getenv("SMARTY_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SMARTY_TIMEOUT value: %v", err)
		}
		cfg.SmartyStreets.Timeout = timeout
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	return nil
}

// Set default values
func applyDefaults(cfg *Config) {
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 5 * time.Second
	}
	if cfg.SmartyStreets.Host == "" {
		cfg.SmartyStreets.Host = smartystreets.DefaultHost
	}
	if cfg.SmartyStreets.Timeout == 0 {
		cfg.SmartyStreets.Timeout = smartystreets.DefaultTimeout
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "INFO"
	}
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// ClientOptions translates the smartystreets section into client options.
func (c *Config) ClientOptions() []smartystreets.Option {
	s := c.SmartyStreets
	opts := []smartystreets.Option{
		smartystreets.WithHost(s.Host),
		smartystreets.WithTimeout(s.Timeout),
		smartystreets.WithIncludeInvalid(s.IncludeInvalid),
		smartystreets.WithStandardizeOnly(s.StandardizeOnly),
	}
	if s.Proxy != "" {
		opts = append(opts, smartystreets.WithProxy(s.Proxy))
	}
	return opts
}

// NewClient builds a SmartyStreets client from the configuration.
func (c *Config) NewClient() (*smartystreets.Client, error) {
	return smartystreets.NewClient(c.SmartyStreets.AuthID, c.SmartyStreets.AuthToken, c.ClientOptions()...)
}
