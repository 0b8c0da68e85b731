package config

const EnvPrefix = "SHOPDESK"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	StoreDriverMemory = "memory"
	StoreDriverSQLite = "sqlite"
)

const (
	LLMProviderMock      = "mock"
	LLMProviderOpenAI    = "openai"
	LLMProviderAnthropic = "anthropic"
)

const (
	EnvAppEnv         = "SHOPDESK_APP_ENV"
	EnvPort           = "SHOPDESK_APP_PORT"
	EnvLogLevel       = "SHOPDESK_LOG_LEVEL"
	EnvStoreDriver    = "SHOPDESK_STORE_DRIVER"
	EnvStoreDSN       = "SHOPDESK_STORE_DSN"
	EnvRedisURL       = "SHOPDESK_REDIS_URL"
	EnvLLMProvider    = "SHOPDESK_LLM_PROVIDER"
	EnvLLMModel       = "SHOPDESK_LLM_MODEL"
	EnvLLMAPIKey      = "SHOPDESK_LLM_API_KEY"
	EnvMetricsEnabled = "SHOPDESK_METRICS_ENABLED"
)
