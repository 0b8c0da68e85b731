package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	Redis   RedisConfig
	LLM     LLMConfig
	Metrics MetricsConfig
	Limits  LimitsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	switch c.Store.Driver {
	case StoreDriverMemory, StoreDriverSQLite:
	default:
		return fmt.Errorf("%s must be one of %s, %s (got %q)", EnvStoreDriver, StoreDriverMemory, StoreDriverSQLite, c.Store.Driver)
	}
	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	switch c.LLM.Provider {
	case LLMProviderMock, LLMProviderOpenAI, LLMProviderAnthropic:
	default:
		return fmt.Errorf("%s must be one of %s, %s, %s (got %q)", EnvLLMProvider, LLMProviderMock, LLMProviderOpenAI, LLMProviderAnthropic, c.LLM.Provider)
	}
	return nil
}

type AppConfig struct {
	Env          string   `envconfig:"SHOPDESK_APP_ENV" default:"dev"`
	Port         string   `envconfig:"SHOPDESK_APP_PORT" default:"8080"`
	LogLevel     string   `envconfig:"SHOPDESK_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"SHOPDESK_LOG_WARN_STACK" default:"false"`
	LogFormat    string   `envconfig:"SHOPDESK_LOG_FORMAT" default:"json"`
	CORSOrigins  []string `envconfig:"SHOPDESK_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type StoreConfig struct {
	Driver       string `envconfig:"SHOPDESK_STORE_DRIVER" default:"memory"`
	DSN          string `envconfig:"SHOPDESK_STORE_DSN" default:"file:shopdesk?mode=memory&cache=shared"`
	MaxOpenConns int    `envconfig:"SHOPDESK_STORE_MAX_OPEN_CONNS" default:"1"`
}

func (s StoreConfig) UsesSQLite() bool {
	return s.Driver == StoreDriverSQLite
}

type RedisConfig struct {
	URL          string        `envconfig:"SHOPDESK_REDIS_URL"`
	Address      string        `envconfig:"SHOPDESK_REDIS_ADDR"`
	Password     string        `envconfig:"SHOPDESK_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHOPDESK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHOPDESK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHOPDESK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHOPDESK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHOPDESK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHOPDESK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint is configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type LLMConfig struct {
	Provider    string        `envconfig:"SHOPDESK_LLM_PROVIDER" default:"mock"`
	Model       string        `envconfig:"SHOPDESK_LLM_MODEL" default:"gpt-3.5-turbo"`
	APIKey      string        `envconfig:"SHOPDESK_LLM_API_KEY"`
	APIKeyEnv   string        `envconfig:"SHOPDESK_LLM_API_KEY_ENV" default:"OPENAI_API_KEY"`
	BaseURL     string        `envconfig:"SHOPDESK_LLM_BASE_URL"`
	Timeout     time.Duration `envconfig:"SHOPDESK_LLM_TIMEOUT" default:"60s"`
	MaxTokens   int           `envconfig:"SHOPDESK_LLM_MAX_TOKENS" default:"500"`
	Temperature float64       `envconfig:"SHOPDESK_LLM_TEMPERATURE" default:"0.7"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"SHOPDESK_METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"SHOPDESK_METRICS_PATH" default:"/metrics"`
}

// LimitsConfig bounds the agent and workflow endpoints, which may call out
// to a paid LLM provider. Limits apply only when redis is configured.
type LimitsConfig struct {
	AgentRequests  int64         `envconfig:"SHOPDESK_AGENT_RATE_LIMIT" default:"30"`
	AgentWindow    time.Duration `envconfig:"SHOPDESK_AGENT_RATE_WINDOW" default:"1m"`
	IdempotencyTTL time.Duration `envconfig:"SHOPDESK_IDEMPOTENCY_TTL" default:"24h"`
}
