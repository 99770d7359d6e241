package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/2beens/trainmetrics/pkg"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host        string
	Port        int
	Environment string `toml:"-"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// prometheus metrics server
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// redis backs the summary cache, auth sessions and rate limiting
	RedisHost                 string `toml:"redis_host"`
	RedisPort                 string `toml:"redis_port"`
	SummaryCacheExpireMinutes int    `toml:"summary_cache_expire_minutes"`

	// unix socket the local decoder agent pushes recordings to
	DecoderUnixSocketAddrDir  string `toml:"decoder_unix_socket_addr_dir"`
	DecoderUnixSocketFileName string `toml:"decoder_unix_socket_file_name"`

	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`
}

// SummaryCacheExpire returns the configured cache TTL, an hour when not
// set.
func (c *Config) SummaryCacheExpire() time.Duration {
	if c.SummaryCacheExpireMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(c.SummaryCacheExpireMinutes) * time.Minute
}

type Toml struct {
	Development *Config
	DockerDev   *Config `toml:"dockerdev"`
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "ddev", "dockerdev":
		return t.DockerDev, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	exists, err := pkg.PathExists(path, false)
	if err != nil {
		return nil, fmt.Errorf("check config file %q: %w", path, err)
	}
	if !exists {
		return nil, fmt.Errorf("config file %q not found", path)
	}

	var cfgToml Toml
	if _, err := toml.DecodeFile(path, &cfgToml); err != nil {
		return nil, fmt.Errorf("decode config file %q: %w", path, err)
	}

	cfg, err := cfgToml.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config for env %s in %q", env, path)
	}

	cfg.Environment = strings.ToLower(env)
	return cfg, nil
}
