package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultEnvPath         = ".env"
	defaultRunAddress      = "0.0.0.0:8000"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	Env    string
	DB     db
	Server server
}

type db struct {
	Driver      string `mapstructure:"database_driver"`
	DatabaseURI string `mapstructure:"database_uri"`
}

type server struct {
	RunAddress      string        `mapstructure:"run_address"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Options locate the optional files Load reads before the environment.
type Options struct {
	// EnvFile is a dotenv file; empty means ".env" in the working directory.
	EnvFile string
	// ConfigFile is a YAML/TOML/JSON file understood by viper.
	ConfigFile string
}

// Load builds the configuration from defaults, an optional config file,
// an optional .env file and the process environment, in increasing order
// of precedence.
func Load(opts Options) (*Config, error) {
	envPath := opts.EnvFile
	if envPath == "" {
		envPath = defaultEnvPath
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envPath, err)
		}
	} else if opts.EnvFile != "" {
		return nil, fmt.Errorf("env file %s: %w", envPath, err)
	}

	v := viper.New()
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("run_address", defaultRunAddress)
	v.SetDefault("database_driver", DriverPostgres)
	v.SetDefault("database_uri", "")
	v.SetDefault("request_timeout", defaultRequestTimeout)
	v.SetDefault("shutdown_timeout", defaultShutdownTimeout)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}
	v.AutomaticEnv()

	cfg := &Config{
		Env: v.GetString("app_env"),
		DB: db{
			Driver:      v.GetString("database_driver"),
			DatabaseURI: v.GetString("database_uri"),
		},
		Server: server{
			RunAddress:      v.GetString("run_address"),
			RequestTimeout:  v.GetDuration("request_timeout"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// MustLoad is Load for process start-up.
func MustLoad(opts Options) *Config {
	cfg, err := Load(opts)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("database_driver must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.DB.Driver)
	}
	if c.DB.DatabaseURI == "" {
		return errors.New("database_uri is required")
	}
	if c.Server.RunAddress == "" {
		return errors.New("run_address is required")
	}
	if c.Server.RequestTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return errors.New("timeouts must not be negative")
	}
	return nil
}

// IsProd reports whether the service runs in production.
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsLocal reports whether the service runs on a developer machine.
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
