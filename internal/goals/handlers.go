package goals

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"goal-coach-backend/internal/ai"
	"goal-coach-backend/internal/analytics"
	"goal-coach-backend/internal/config"
)

const (
	analysisTemperature = 0.7
	analysisMaxTokens   = 2000

	categoryTemperature = 0.3
	categoryMaxTokens   = 20
)

type Completer interface {
	Complete(ctx context.Context, req ai.ChatRequest) (string, error)
}

type KeySource interface {
	OpenAIKey() (string, error)
}

type Deps struct {
	Keys      KeySource
	NewClient func(apiKey string) Completer
	Model     string
	Now       func() time.Time
	Logger    *slog.Logger
}

func NewDeps(cfg *config.Config, logger *slog.Logger) Deps {
	return Deps{
		Keys: cfg,
		NewClient: func(apiKey string) Completer {
			return ai.New(apiKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, nil)
		},
		Model:  cfg.OpenAIModel,
		Now:    time.Now,
		Logger: logger,
	}
}

func (d Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}

func (d Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// AnalyzeGoalHandler turns a goal into a SMART analysis produced by the model.
func AnalyzeGoalHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodOptions:
			preflight(w)
			return
		case http.MethodPost:
		default:
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		log := d.logger()
		env := analytics.FromRequest(r)
		start := time.Now()

		var body GoalInput
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			log.Error("analyze-goal: decode body", "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if err := body.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, "Title is required")
			return
		}

		key, err := d.Keys.OpenAIKey()
		if err != nil {
			log.Error("analyze-goal: missing config", "error", err)
			writeError(w, http.StatusInternalServerError, "API key not configured")
			return
		}

		prompt := ai.BuildAnalysisPrompt(body.Title, body.Description, d.now().Year())
		reply, err := d.NewClient(key).Complete(r.Context(), ai.ChatRequest{
			Prompt:      prompt,
			Temperature: analysisTemperature,
			MaxTokens:   analysisMaxTokens,
		})
		if err != nil {
			msg := err.Error()
			var perr *ai.ProviderError
			if errors.As(err, &perr) {
				msg = perr.Message
				if msg == "" {
					msg = "AI service error"
				}
			}
			log.Error("analyze-goal: openai error", "error", err)
			analytics.Log(r.Context(), log, env, "goal_analysis_failed", map[string]any{
				"reason":   "provider",
				"model":    d.Model,
				"duration": time.Since(start).Milliseconds(),
			})
			writeError(w, http.StatusInternalServerError, msg)
			return
		}

		result, err := ai.ExtractJSON(reply)
		if err != nil {
			log.Error("analyze-goal: parse reply", "error", err, "reply_len", len(reply))
			analytics.Log(r.Context(), log, env, "goal_analysis_failed", map[string]any{
				"reason":   "invalid_reply",
				"model":    d.Model,
				"duration": time.Since(start).Milliseconds(),
			})
			if errors.Is(err, ai.ErrNoJSON) {
				writeError(w, http.StatusInternalServerError, "Invalid AI response")
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		analytics.Log(r.Context(), log, env, "goal_analyzed", map[string]any{
			"text_len":        body.TextLen(),
			"has_description": body.Description != "",
			"model":           d.Model,
			"duration":        time.Since(start).Milliseconds(),
		})

		writeJSON(w, http.StatusOK, result)
	}
}

// DetectCategoryHandler classifies a goal into one of the fixed categories.
// Provider trouble never reaches the caller: it answers "other" instead.
func DetectCategoryHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodOptions:
			preflight(w)
			return
		case http.MethodPost:
		default:
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		log := d.logger()
		env := analytics.FromRequest(r)

		var body GoalInput
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			log.Warn("detect-category: decode body", "error", err)
			writeJSON(w, http.StatusOK, CategoryResult{Category: CategoryOther})
			return
		}
		if err := body.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, "Title is required")
			return
		}

		key, err := d.Keys.OpenAIKey()
		if err != nil {
			log.Error("detect-category: missing config", "error", err)
			writeError(w, http.StatusInternalServerError, "API key not configured")
			return
		}

		category := CategoryOther
		fallback := true

		reply, err := d.NewClient(key).Complete(r.Context(), ai.ChatRequest{
			Prompt:      ai.BuildCategoryPrompt(body.Title, body.Description),
			Temperature: categoryTemperature,
			MaxTokens:   categoryMaxTokens,
		})
		if err != nil {
			log.Warn("detect-category: openai error", "error", err)
		} else {
			var ok bool
			category, ok = ParseCategory(reply)
			fallback = !ok
		}

		analytics.Log(r.Context(), log, env, "goal_categorized", map[string]any{
			"category": string(category),
			"fallback": fallback,
			"text_len": body.TextLen(),
			"model":    d.Model,
		})

		writeJSON(w, http.StatusOK, CategoryResult{Category: category})
	}
}
