package server

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/fraudguard-ai/fraudguard/pkg/detect"
	"github.com/fraudguard-ai/fraudguard/pkg/dispatch"
	"github.com/fraudguard-ai/fraudguard/pkg/scoring"
)

// detectionRequest is the body shape shared by the scoring and ai-text
// endpoints.
type detectionRequest struct {
	Text string `json:"text"`
}

// imageRequest is the body shape of the image stub endpoint.
type imageRequest struct {
	ImageBase64 string `json:"imageBase64"`
}

// errorResponse writes the uniform error envelope.
func errorResponse(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// handleDetectSMS scores an SMS text block.
func (s *Server) handleDetectSMS(c fiber.Ctx) error {
	return s.handleScore(c, scoring.ChannelSMS)
}

// handleDetectEmail scores an email text block.
func (s *Server) handleDetectEmail(c fiber.Ctx) error {
	return s.handleScore(c, scoring.ChannelEmail)
}

func (s *Server) handleScore(c fiber.Ctx, channel scoring.Channel) error {
	var req detectionRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	return c.JSON(scoring.Score(req.Text, channel))
}

// handleDetectAIText runs the AI-text detector stub.
func (s *Server) handleDetectAIText(c fiber.Ctx) error {
	var req detectionRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := s.deps.AIText.Detect(c.Context(), req.Text)
	if err != nil {
		s.log.Error().Err(err).Msg("ai-text detection failed")
		return errorResponse(c, fiber.StatusBadGateway, "detection backend unavailable")
	}
	return c.JSON(fiber.Map{
		"status":         "success",
		"classification": result.Classification,
		"confidence":     result.Confidence,
	})
}

// handleDetectImage runs the image detector stub.
func (s *Server) handleDetectImage(c fiber.Ctx) error {
	var req imageRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := s.deps.Image.Detect(c.Context(), req.ImageBase64)
	if err != nil {
		s.log.Error().Err(err).Msg("image detection failed")
		return errorResponse(c, fiber.StatusBadGateway, "detection backend unavailable")
	}
	return c.JSON(fiber.Map{
		"status":         "success",
		"classification": result.Classification,
		"confidence":     result.Confidence,
	})
}

// handleDispatch feeds the raw body and credential headers to the dispatch
// router and maps its error taxonomy onto HTTP statuses.
func (s *Server) handleDispatch(c fiber.Ctx) error {
	result, err := s.deps.Router.Dispatch(
		c.Context(),
		c.Body(),
		c.Get("x-api-key"),
		c.Get(fiber.HeaderAuthorization),
	)
	if err != nil {
		var authErr *dispatch.AuthError
		var malformed *dispatch.MalformedInputError
		var unclassifiable *dispatch.UnclassifiableShapeError
		switch {
		case errors.As(err, &authErr):
			return errorResponse(c, fiber.StatusUnauthorized, "invalid or missing API key")
		case errors.As(err, &malformed):
			return errorResponse(c, fiber.StatusBadRequest, "request body is not valid JSON")
		case errors.As(err, &unclassifiable):
			return errorResponse(c, fiber.StatusBadRequest, "payload matches no known request shape")
		default:
			s.log.Error().Err(err).Msg("dispatch handler failed")
			return errorResponse(c, fiber.StatusInternalServerError, "internal error")
		}
	}
	return c.JSON(result)
}

// VoiceAdapter bridges a detect.VoiceDetector into the dispatch router.
type VoiceAdapter struct {
	Detector detect.VoiceDetector
}

// HandleVoice runs voice detection and shapes the success envelope.
func (a VoiceAdapter) HandleVoice(ctx context.Context, payload dispatch.VoicePayload) (any, error) {
	result, err := a.Detector.DetectVoice(ctx, detect.VoiceRequest{
		AudioBase64: payload.AudioBase64,
		Language:    payload.Language,
	})
	if err != nil {
		return nil, err
	}
	return fiber.Map{
		"status":         "success",
		"classification": result.Classification,
		"confidence":     result.Confidence,
		"language":       result.Language,
	}, nil
}

// HoneypotAdapter bridges a detect.HoneypotResponder into the dispatch router.
type HoneypotAdapter struct {
	Responder detect.HoneypotResponder
}

// HandleHoneypot produces the next honeypot turn and shapes the success envelope.
func (a HoneypotAdapter) HandleHoneypot(ctx context.Context, payload dispatch.HoneypotPayload) (any, error) {
	result, err := a.Responder.Respond(ctx, detect.HoneypotRequest{
		SessionID: payload.SessionID,
		Message:   payload.Message,
	})
	if err != nil {
		return nil, err
	}
	return fiber.Map{
		"status":    "success",
		"sessionId": result.SessionID,
		"reply":     result.Reply,
		"persona":   result.Persona,
	}, nil
}
