package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Data     DataConfig
	CORS     CORSConfig
	LLM      LLMConfig
	Kafka    KafkaConfig
	LogLevel string
}

type ServerConfig struct {
	Host string
	Port string
}

type DataConfig struct {
	FilePath      string
	WatchSchedule string // cron spec for the drift check, empty disables it
}

type CORSConfig struct {
	AllowedOrigin string
}

type LLMConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// KafkaConfig configures the optional audit trail. No brokers means disabled.
type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
}

func NewConfig() (*Config, error) {
	v := viper.New()

	// Configure Viper to read .env file
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "8000")
	v.SetDefault("DATA_FILE_PATH", "./dummyData.json")
	v.SetDefault("DATA_WATCH_SCHEDULE", "@every 5m")
	v.SetDefault("CORS_ALLOWED_ORIGIN", "http://localhost:3000")
	v.SetDefault("LLM_BASE_URL", "https://api.anthropic.com/v1/")
	v.SetDefault("LLM_MODEL", "claude-3-7-sonnet-20250219")
	v.SetDefault("LLM_TIMEOUT", "60s")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_AUDIT_TOPIC", "sales_ai_audit")
	v.SetDefault("LOG_LEVEL", "info")

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file, using environment only")
	}

	var config Config
	config.Server.Host = v.GetString("SERVER_HOST")
	config.Server.Port = v.GetString("SERVER_PORT")

	config.Data.FilePath = v.GetString("DATA_FILE_PATH")
	config.Data.WatchSchedule = strings.TrimSpace(v.GetString("DATA_WATCH_SCHEDULE"))

	config.CORS.AllowedOrigin = v.GetString("CORS_ALLOWED_ORIGIN")

	// --- LLM ---
	config.LLM.APIKey = v.GetString("LLM_API_KEY")
	config.LLM.BaseURL = v.GetString("LLM_BASE_URL")
	config.LLM.Model = v.GetString("LLM_MODEL")
	config.LLM.Timeout = v.GetDuration("LLM_TIMEOUT")

	// --- Kafka ---
	config.Kafka.Brokers = splitList(v.GetString("KAFKA_BROKERS"))
	config.Kafka.AuditTopic = v.GetString("KAFKA_AUDIT_TOPIC")

	config.LogLevel = v.GetString("LOG_LEVEL")
	applyLogLevel(config.LogLevel)

	if config.LLM.APIKey == "" {
		log.Warn().Msg("LLM_API_KEY is not set, AI answers will report an API error")
	}

	// The API key is deliberately left out of this line.
	log.Info().
		Str("host", config.Server.Host).
		Str("port", config.Server.Port).
		Str("data_file", config.Data.FilePath).
		Str("watch_schedule", config.Data.WatchSchedule).
		Str("cors_origin", config.CORS.AllowedOrigin).
		Str("llm_base_url", config.LLM.BaseURL).
		Str("llm_model", config.LLM.Model).
		Dur("llm_timeout", config.LLM.Timeout).
		Strs("kafka_brokers", config.Kafka.Brokers).
		Msg("Config loaded")
	return &config, nil
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func applyLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		log.Warn().Str("level", level).Msg("Unknown LOG_LEVEL, falling back to info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
