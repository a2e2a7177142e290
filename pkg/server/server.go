// Package server wires the scoring engine, dispatch router, and detector
// stubs into the Fiber HTTP surface.
package server

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/rs/zerolog"

	"github.com/fraudguard-ai/fraudguard/pkg/config"
	"github.com/fraudguard-ai/fraudguard/pkg/detect"
	"github.com/fraudguard-ai/fraudguard/pkg/dispatch"
	"github.com/fraudguard-ai/fraudguard/pkg/logging"
)

// Deps are the collaborators behind the HTTP surface.
type Deps struct {
	Router *dispatch.Router
	AIText detect.TextDetector
	Image  detect.TextDetector
}

// Server holds the request handlers and their collaborators.
type Server struct {
	cfg  *config.Config
	deps Deps
	log  zerolog.Logger
}

// New builds the Fiber app with all routes and middleware registered.
func New(cfg *config.Config, deps Deps) *fiber.App {
	s := &Server{
		cfg:  cfg,
		deps: deps,
		log:  logging.With("server"),
	}

	app := fiber.New(fiber.Config{
		AppName: "FraudGuard",
	})

	app.Use(requestid.New())
	app.Use(s.requestLogger)
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Split(cfg.AllowOrigins, ","),
		AllowMethods: []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions},
		AllowHeaders: []string{fiber.HeaderContentType, fiber.HeaderAuthorization, "x-api-key"},
	}))

	app.Get("/", s.handleFrontend)
	app.Get("/healthz", s.handleHealth)

	// Scoring and stub endpoints: exposed unauthenticated by design.
	app.Post("/detect-sms", s.handleDetectSMS)
	app.Post("/detect-email", s.handleDetectEmail)
	app.Post("/detect-ai-text", s.handleDetectAIText)
	app.Post("/detect-image", s.handleDetectImage)

	// Legacy shape-sniffing paths: all equivalent, all routed through the
	// dispatch router which gates protected shapes.
	for _, path := range []string{"/", "/detect-audio", "/honeypot", "/api/voice-detection"} {
		app.Post(path, s.handleDispatch)
	}

	return app
}

// requestLogger emits one structured line per request.
func (s *Server) requestLogger(c fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	s.log.Info().
		Str("request_id", requestid.FromContext(c)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("request")

	return err
}

// handleHealth reports liveness.
func (s *Server) handleHealth(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleFrontend serves the static index.html when present, falling back to
// a JSON status document.
func (s *Server) handleFrontend(c fiber.Ctx) error {
	index := filepath.Join(s.cfg.StaticDir, "index.html")
	if _, err := os.Stat(index); err == nil {
		return c.SendFile(index)
	}
	return c.JSON(fiber.Map{
		"service": "FraudGuard",
		"status":  "ok",
	})
}
