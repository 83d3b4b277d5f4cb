package main

import (
	"log"

	"goal-coach-backend/internal/config"
	"goal-coach-backend/internal/goals"
	"goal-coach-backend/internal/server"
)

func main() {
	cfg := config.Load()
	logger := cfg.Logger()

	// key is read per request; only warn here so the server still comes up
	if _, err := cfg.OpenAIKey(); err != nil {
		logger.Warn("OpenAI key missing, AI endpoints will fail", "error", err)
	}

	handler := server.NewHandler(goals.NewDeps(cfg, logger), logger)

	srv := server.New(cfg, handler, logger)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
