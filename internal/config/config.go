// Package config loads the service configuration from a YAML file with
// .env and environment variable overrides.
package config

import "time"

// Default configuration values.
const (
	defaultServiceName    = "creative-radar"
	defaultServiceVersion = "1.0.0"
	defaultServicePort    = 8090
	defaultReadTimeout    = 10 * time.Second
	defaultWriteTimeout   = 30 * time.Second

	defaultLogLevel = "info"

	defaultTopN        = 30
	defaultRateLimit   = 10.0
	defaultRateBurst   = 20
	defaultMaxBodySize = 4 << 20

	defaultDBHost         = "localhost"
	defaultDBPort         = 5432
	defaultDBUser         = "postgres"
	defaultDBName         = "creative_radar"
	defaultDBSSLMode      = "disable"
	defaultDBMaxConns     = 25
	defaultDBMaxIdleConns = 5
)

// Config holds all configuration for the service.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Logging  LoggingConfig  `yaml:"logging"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Ranking  RankingConfig  `yaml:"ranking"`
	Database DatabaseConfig `yaml:"database"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name         string        `yaml:"name"`
	Version      string        `yaml:"version"`
	Port         int           `env:"RADAR_PORT" yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	// RateLimit is requests per second per client; RateBurst the bucket
	// size.
	RateLimit float64 `yaml:"rate_limit"`
	RateBurst int     `yaml:"rate_burst"`
	// MaxBodySize caps request bodies in bytes.
	MaxBodySize int64 `yaml:"max_body_size"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level       string `env:"LOG_LEVEL" yaml:"level"`
	Development bool   `env:"LOG_DEVELOPMENT" yaml:"development"`
}

// PipelineConfig holds analysis pipeline configuration.
type PipelineConfig struct {
	// TopN is the ranked-slice cutoff handed to the pattern miner.
	TopN int `env:"RADAR_TOP_N" yaml:"top_n"`
}

// RankingConfig holds the objective weights. Zero values fall back to
// the ranker's defaults so a config file may override only some weights.
type RankingConfig struct {
	FitWeight           float64 `yaml:"fit_weight"`
	PerformanceWeight   float64 `yaml:"performance_weight"`
	FormatWeight        float64 `yaml:"format_weight"`
	RepeatabilityWeight float64 `yaml:"repeatability_weight"`
	RiskWeight          float64 `yaml:"risk_weight"`
}

// DatabaseConfig holds the optional run-history database configuration.
type DatabaseConfig struct {
	Enabled         bool          `env:"RADAR_DB_ENABLED" yaml:"enabled"`
	Host            string        `env:"POSTGRES_HOST"     yaml:"host"`
	Port            int           `env:"POSTGRES_PORT"     yaml:"port"`
	User            string        `env:"POSTGRES_USER"     yaml:"user"`
	Password        string        `env:"POSTGRES_PASSWORD" yaml:"password"`
	Database        string        `env:"POSTGRES_DB"       yaml:"database"`
	SSLMode         string        `env:"POSTGRES_SSLMODE"  yaml:"sslmode"`
	MaxConnections  int           `yaml:"max_connections"`
	MaxIdleConns    int           `yaml:"max_idle_connections"`
	ConnMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
}

// Load reads the config file at path, applies defaults, then re-applies
// environment overrides so env always wins.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := load(path, &cfg); err != nil {
		return nil, err
	}
	setDefaults(&cfg)
	applyEnv(&cfg)
	return &cfg, nil
}

// setDefaults applies default values to unset fields.
func setDefaults(cfg *Config) {
	if cfg.Service.Name == "" {
		cfg.Service.Name = defaultServiceName
	}
	if cfg.Service.Version == "" {
		cfg.Service.Version = defaultServiceVersion
	}
	if cfg.Service.Port == 0 {
		cfg.Service.Port = defaultServicePort
	}
	if cfg.Service.ReadTimeout == 0 {
		cfg.Service.ReadTimeout = defaultReadTimeout
	}
	if cfg.Service.WriteTimeout == 0 {
		cfg.Service.WriteTimeout = defaultWriteTimeout
	}
	if cfg.Service.RateLimit == 0 {
		cfg.Service.RateLimit = defaultRateLimit
	}
	if cfg.Service.RateBurst == 0 {
		cfg.Service.RateBurst = defaultRateBurst
	}
	if cfg.Service.MaxBodySize == 0 {
		cfg.Service.MaxBodySize = defaultMaxBodySize
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
	if cfg.Pipeline.TopN == 0 {
		cfg.Pipeline.TopN = defaultTopN
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = defaultDBHost
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = defaultDBPort
	}
	if cfg.Database.User == "" {
		cfg.Database.User = defaultDBUser
	}
	if cfg.Database.Database == "" {
		cfg.Database.Database = defaultDBName
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = defaultDBSSLMode
	}
	if cfg.Database.MaxConnections == 0 {
		cfg.Database.MaxConnections = defaultDBMaxConns
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = defaultDBMaxIdleConns
	}
}
