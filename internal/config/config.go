package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env     string  `yaml:"env" env:"SB_ENV" env-default:"local"`
	API     API     `yaml:"api"`
	Stub    Stub    `yaml:"stub_server"`
	Results Results `yaml:"results"`
}

type API struct {
	BaseURL        string        `yaml:"base_url" env:"SB_API_BASE_URL" env-default:"http://localhost:8080"`
	Timeout        time.Duration `yaml:"timeout" env:"SB_API_TIMEOUT" env-default:"15s"`
	TokenCachePath string        `yaml:"token_cache_path" env:"SB_TOKEN_CACHE_PATH"`
}

type Stub struct {
	Address     string        `yaml:"address" env:"SB_STUB_ADDRESS" env-default:"0.0.0.0:8080"`
	JWTSecret   string        `yaml:"jwt_secret" env:"SB_STUB_JWT_SECRET" env-default:"dev-only-secret"`
	Seed        bool          `yaml:"seed" env:"SB_STUB_SEED" env-default:"true"`
	RateLimit   int           `yaml:"rate_limit" env:"SB_STUB_RATE_LIMIT" env-default:"240"`
	Timeout     time.Duration `yaml:"timeout" env:"SB_STUB_TIMEOUT" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"SB_STUB_IDLE_TIMEOUT" env-default:"60s"`
}

type Results struct {
	RefreshInterval time.Duration `yaml:"refresh_interval" env:"SB_RESULTS_REFRESH_INTERVAL" env-default:"30s"`
}

// Load reads the config file at path when given, otherwise environment
// variables and defaults only.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad resolves the config path (explicit argument, then CONFIG_PATH)
// and panics when the file cannot be read.
func MustLoad(path string) *Config {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := Load(path)
	if err != nil {
		panic("cannot read config: " + err.Error())
	}
	return cfg
}

// ResolvedTokenCachePath falls back to a dotfile under the user's home
// directory when no explicit path is configured.
func (a API) ResolvedTokenCachePath() string {
	if a.TokenCachePath != "" {
		return a.TokenCachePath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".secureballot-token"
	}
	return home + "/.secureballot/token"
}
