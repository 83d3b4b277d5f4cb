package main

import (
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/lambdaurl"

	"goal-coach-backend/internal/config"
	"goal-coach-backend/internal/goals"
	"goal-coach-backend/internal/server"
)

func newHandler(d goals.Deps, logger *slog.Logger) http.Handler {
	return server.NewHandler(d, logger)
}

// Function URL must use the RESPONSE_STREAM invoke mode; lambdaurl replies
// with a streaming response.
func main() {
	cfg := config.Load()
	logger := cfg.Logger()

	logger.Info("lambda handler starting", "model", cfg.OpenAIModel)
	lambdaurl.Start(newHandler(goals.NewDeps(cfg, logger), logger))
}
