package analytics

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Envelope is what we attach to every event.
type Envelope struct {
	SessionID    string
	Platform     string
	AppVersion   string
	DeviceLocale string
	EventKey     string
}

// FromRequest extracts event envelope fields from request headers.
func FromRequest(r *http.Request) Envelope {
	platform := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Platform")))
	if platform != "ios" && platform != "android" && platform != "web" {
		platform = "unknown"
	}

	locale := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if locale == "" {
		locale = strings.TrimSpace(r.Header.Get("X-Device-Locale"))
	}

	return Envelope{
		SessionID:    strings.TrimSpace(r.Header.Get("X-Session-Id")),
		Platform:     platform,
		AppVersion:   strings.TrimSpace(r.Header.Get("X-App-Version")),
		DeviceLocale: locale,
		EventKey:     SourceEventKeyFromRequest(r),
	}
}

// SourceEventKeyFromRequest returns the client idempotency key, or a fresh
// UUID so every event can still be correlated.
func SourceEventKeyFromRequest(r *http.Request) string {
	if k := strings.TrimSpace(r.Header.Get("Idempotency-Key")); k != "" {
		return k
	}
	if k := strings.TrimSpace(r.Header.Get("X-Source-Event-Key")); k != "" {
		return k
	}
	return uuid.NewString()
}

// Log emits one analytics event.
// Never logs raw goal text; callers pass sanitized props.
func Log(ctx context.Context, logger *slog.Logger, env Envelope, eventName string, props map[string]any) {
	if eventName == "" {
		return
	}
	if logger == nil {
		logger = slog.Default()
	}

	attrs := make([]any, 0, len(props))
	for k, v := range props {
		attrs = append(attrs, slog.Any(k, v))
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "analytics event",
		slog.String("event_name", eventName),
		slog.Time("event_time", time.Now().UTC()),
		slog.String("event_key", env.EventKey),
		slog.String("session_id", env.SessionID),
		slog.String("platform", env.Platform),
		slog.String("app_version", env.AppVersion),
		slog.String("device_locale", env.DeviceLocale),
		slog.Group("properties", attrs...),
	)
}
