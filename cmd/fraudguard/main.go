package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fraudguard-ai/fraudguard/pkg/config"
	"github.com/fraudguard-ai/fraudguard/pkg/detect"
	"github.com/fraudguard-ai/fraudguard/pkg/dispatch"
	"github.com/fraudguard-ai/fraudguard/pkg/logging"
	"github.com/fraudguard-ai/fraudguard/pkg/scoring"
	"github.com/fraudguard-ai/fraudguard/pkg/server"
)

func main() {
	// Optional .env for local development; env vars win either way.
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log := logging.With("main")

	if err := scoring.LoadRules(cfg.RulesDir); err != nil {
		log.Error().Err(err).Str("dir", cfg.RulesDir).Msg("failed to load scoring rules")
		os.Exit(1)
	}

	seed := uint64(time.Now().UnixNano())

	var aiText detect.TextDetector = detect.NewMockAITextDetector(seed)
	if cfg.AITextURL != "" {
		aiText = detect.NewRemoteTextDetector(cfg.AITextURL, "ai-text", 10*time.Second)
		log.Info().Str("url", cfg.AITextURL).Msg("using remote ai-text detector")
	}

	router := dispatch.NewRouter(cfg.APIKey,
		server.VoiceAdapter{Detector: detect.NewMockVoiceDetector(seed)},
		server.HoneypotAdapter{Responder: detect.NewMockHoneypotResponder(seed)},
	)

	app := server.New(cfg, server.Deps{
		Router: router,
		AIText: aiText,
		Image:  detect.NewMockImageDetector(seed),
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info().Msg("shutting down")
		_ = app.Shutdown()
	}()

	log.Info().Str("addr", cfg.ListenAddr).Msg("listening")
	if err := app.Listen(cfg.ListenAddr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
