package config

import (
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	PostgresAddress  string `koanf:"postgres_address"`
	PostgresPort     string `koanf:"postgres_port"`
	PostgresDB       string `koanf:"postgres_db"`
	PostgresUsername string `koanf:"postgres_username"`
	PostgresPassword string `koanf:"postgres_password"`
	HTTPPort         string `koanf:"http_port"`
	OperatorWorkers  int    `koanf:"operator_workers"`
}

// ProcessEnvironmentVariables builds the runtime config from defaults
// overlaid with environment variables (POSTGRES_ADDRESS, HTTP_PORT, ...).
func ProcessEnvironmentVariables() (*Config, error) {
	k := koanf.New(".")

	// In all cases the default behavior should be for the docker compose setup
	defaults := map[string]interface{}{
		"postgres_address":  "localhost",
		"postgres_port":     "5433",
		"postgres_db":       "postgres",
		"postgres_username": "postgres",
		"postgres_password": "testpassword",
		"http_port":         "9446",
		"operator_workers":  2,
	}

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
