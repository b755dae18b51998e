package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/workoutexplorer/internal/exercises"

	"github.com/BurntSushi/toml"
)

const (
	FavoritesBackendFile  = "file"
	FavoritesBackendRedis = "redis"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// browser origins allowed to call the api
	AllowedOrigins []string `toml:"allowed_origins"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// wger api
	WgerBaseURL           string  `toml:"wger_base_url"`
	WgerTimeoutSeconds    int     `toml:"wger_timeout_seconds"`
	WgerRequestsPerSecond float64 `toml:"wger_requests_per_second"`
	WgerBurst             int     `toml:"wger_burst"`
	WgerCacheSizeMB       int     `toml:"wger_cache_size_mb"`
	WgerCacheExpireSec    int     `toml:"wger_cache_expire_sec"`
	// exercises
	LanguagePolicy      string `toml:"language_policy"`
	ImageConcurrency    int    `toml:"image_concurrency"`
	PlaceholderImageURL string `toml:"placeholder_image_url"`
	// favorites
	FavoritesBackend string `toml:"favorites_backend"`
	FavoritesPath    string `toml:"favorites_path"`
	// redis
	RedisHost                    string `toml:"redis_host"`
	RedisPort                    string `toml:"redis_port"`
	ToggleRateLimitAllowedPerMin int    `toml:"toggle_rate_limit_allowed_per_min"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the section for env,
// with defaults applied and validated.
func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode toml config: %w", err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env [%s] missing", env)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9100
	}
	if c.WgerTimeoutSeconds <= 0 {
		c.WgerTimeoutSeconds = 30
	}
	if c.ImageConcurrency <= 0 {
		c.ImageConcurrency = exercises.DefaultImageConcurrency
	}
	if c.FavoritesBackend == "" {
		c.FavoritesBackend = FavoritesBackendFile
	}
	if c.FavoritesPath == "" {
		c.FavoritesPath = "./data"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
}

func (c *Config) Validate() error {
	var errs []error
	if _, err := exercises.ParseLanguagePolicy(c.LanguagePolicy); err != nil {
		errs = append(errs, err)
	}
	switch c.FavoritesBackend {
	case FavoritesBackendFile:
	case FavoritesBackendRedis:
		if c.RedisHost == "" {
			errs = append(errs, errors.New("redis favorites backend requires redis_host"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown favorites backend: %s", c.FavoritesBackend))
	}
	if c.WgerRequestsPerSecond < 0 {
		errs = append(errs, errors.New("wger_requests_per_second must not be negative"))
	}
	return errors.Join(errs...)
}
