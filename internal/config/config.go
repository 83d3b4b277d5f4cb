package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	KeyServerAddr   = "SERVER_ADDR"
	KeyReadTimeout  = "SERVER_READ_TIMEOUT"
	KeyWriteTimeout = "SERVER_WRITE_TIMEOUT"
	KeyOpenAIKey    = "OPENAI_API_KEY"
	KeyOpenAIURL    = "OPENAI_BASE_URL"
	KeyOpenAIModel  = "OPENAI_MODEL"
	KeyLogLevel     = "LOG_LEVEL"
)

type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	OpenAIBaseURL string
	OpenAIModel   string

	LogLevel string

	v *viper.Viper
}

// MissingError reports a setting that has to be provided by the host
// environment but is empty.
type MissingError struct {
	Key string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("config: %s is not set", e.Key)
}

func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(KeyServerAddr, ":8080")
	v.SetDefault(KeyReadTimeout, 15*time.Second)
	v.SetDefault(KeyWriteTimeout, 60*time.Second)
	v.SetDefault(KeyOpenAIURL, "https://api.openai.com/v1/")
	v.SetDefault(KeyOpenAIModel, "gpt-4o-mini")
	v.SetDefault(KeyLogLevel, "info")

	return &Config{
		Addr:         strings.TrimSpace(v.GetString(KeyServerAddr)),
		ReadTimeout:  v.GetDuration(KeyReadTimeout),
		WriteTimeout: v.GetDuration(KeyWriteTimeout),

		OpenAIBaseURL: withTrailingSlash(strings.TrimSpace(v.GetString(KeyOpenAIURL))),
		OpenAIModel:   strings.TrimSpace(v.GetString(KeyOpenAIModel)),

		LogLevel: v.GetString(KeyLogLevel),

		v: v,
	}
}

// OpenAIKey reads the provider secret at call time so a key rotated in the
// host environment is picked up by the next request.
func (c *Config) OpenAIKey() (string, error) {
	var key string
	if c.v != nil {
		key = c.v.GetString(KeyOpenAIKey)
	} else {
		key = os.Getenv(KeyOpenAIKey)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", &MissingError{Key: KeyOpenAIKey}
	}
	return key, nil
}

func (c *Config) Logger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: ParseLevel(c.LogLevel),
	}))
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func withTrailingSlash(u string) string {
	if strings.HasSuffix(u, "/") {
		return u
	}
	return u + "/"
}
