package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "ADOPT"

// KafkaConfig holds settings for the live message notification feed.
type KafkaConfig struct {
	Brokers      []string
	GroupPrefix  string
	MessageTopic string
}

// Enabled reports whether any broker is configured.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// ClientConfig holds all configuration for the adoption client.
type ClientConfig struct {
	AppEnv            string
	APIBaseURL        string
	RequestTimeout    time.Duration
	NotificationDelay time.Duration
	UserEmail         string
	KafkaConfig       KafkaConfig
}

// Load reads configuration from ADOPT_* environment variables.
func Load() (*ClientConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("API_BASE_URL", "http://localhost:8000/api")
	v.SetDefault("REQUEST_TIMEOUT", "10s")
	v.SetDefault("NOTIFICATION_DELAY", "4s")
	v.SetDefault("USER_EMAIL", "")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_GROUP_PREFIX", "adopt-")
	v.SetDefault("KAFKA_MESSAGE_TOPIC", "message.events")

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*ClientConfig, error) {
	baseURL, err := normalizeBaseURL(v.GetString("API_BASE_URL"))
	if err != nil {
		return nil, err
	}

	timeout := v.GetDuration("REQUEST_TIMEOUT")
	if timeout <= 0 {
		return nil, fmt.Errorf("%s_REQUEST_TIMEOUT must be positive, got %q", envPrefix, v.GetString("REQUEST_TIMEOUT"))
	}

	delay := v.GetDuration("NOTIFICATION_DELAY")
	if delay < 0 {
		return nil, fmt.Errorf("%s_NOTIFICATION_DELAY cannot be negative", envPrefix)
	}

	return &ClientConfig{
		AppEnv:            strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV"))),
		APIBaseURL:        baseURL,
		RequestTimeout:    timeout,
		NotificationDelay: delay,
		UserEmail:         strings.TrimSpace(v.GetString("USER_EMAIL")),
		KafkaConfig: KafkaConfig{
			Brokers:      splitList(v.GetString("KAFKA_BROKERS")),
			GroupPrefix:  v.GetString("KAFKA_GROUP_PREFIX"),
			MessageTopic: v.GetString("KAFKA_MESSAGE_TOPIC"),
		},
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.ParseRequestURI(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid %s_API_BASE_URL %q", envPrefix, raw)
	}
	return strings.TrimRight(raw, "/"), nil
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
