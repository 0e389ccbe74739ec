package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
	KeyUserID  = key("user_id")
)

type Config struct {
	Service   Service
	Platform  Platform
	Logger    Logger
	Metrics   Metrics
	Kafka     Kafka
	Messaging Messaging
	Polling   Polling
}

type Service struct {
	Name string `env:"CHAT_SYNC_SERVICE_NAME" env-default:"chat-sync"`
	Port string `env:"CHAT_SYNC_SERVICE_PORT" env-default:"8080"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Kafka struct {
	Host         string `env:"KAFKA_HOST"`
	Port         string `env:"KAFKA_PORT"`
	PartnerTopic string `env:"KAFKA_PARTNER_TOPIC" env-default:"user_updates"`
}

type Messaging struct {
	BaseURL      string        `env:"MESSAGING_BASE_URL"`
	MediaBaseURL string        `env:"MESSAGING_MEDIA_BASE_URL"`
	Timeout      time.Duration `env:"MESSAGING_TIMEOUT" env-default:"30s"`
}

type Polling struct {
	MessageInterval time.Duration `env:"POLLING_MESSAGE_INTERVAL" env-default:"10s"`
	ListInterval    time.Duration `env:"POLLING_LIST_INTERVAL" env-default:"15s"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env variables: %v", err)
	}
	return cfg
}
