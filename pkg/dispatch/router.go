package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
)

// Classify probes a raw JSON body for its structural shape, in fixed priority
// order: an audio payload key wins over honeypot conversation markers. The
// decoded payload is returned alongside the verdict. Invalid JSON yields a
// MalformedInputError; a shape matching no schema yields ClassUnknown with a
// nil payload and no error.
func Classify(body []byte) (Classification, any, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return ClassUnknown, nil, &MalformedInputError{Err: err}
	}

	if _, ok := probe["audioBase64"]; ok {
		var payload VoicePayload
		if err := json.Unmarshal(body, &payload); err != nil {
			return ClassUnknown, nil, &MalformedInputError{Err: err}
		}
		if payload.Language == "" {
			payload.Language = DefaultVoiceLanguage
		}
		return ClassVoice, payload, nil
	}

	_, hasSession := probe["sessionId"]
	_, hasMessage := probe["message"]
	if hasSession || hasMessage {
		var payload HoneypotPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			return ClassUnknown, nil, &MalformedInputError{Err: err}
		}
		return ClassHoneypot, payload, nil
	}

	return ClassUnknown, nil, nil
}

// Router binds the classification and auth policy to the domain handlers.
// Stateless across requests; safe for concurrent use.
type Router struct {
	secret   string
	voice    VoiceHandler
	honeypot HoneypotHandler
}

// NewRouter creates a dispatch router with the process-wide secret and the
// handlers for each protected domain.
func NewRouter(secret string, voice VoiceHandler, honeypot HoneypotHandler) *Router {
	return &Router{
		secret:   secret,
		voice:    voice,
		honeypot: honeypot,
	}
}

// Dispatch runs the full per-request state machine: decode and classify the
// body, enforce the credential policy for protected shapes, and invoke the
// matching handler. Every failure is terminal and synchronous; the handler is
// never invoked when auth fails.
func (r *Router) Dispatch(ctx context.Context, body []byte, xAPIKey, authorization string) (any, error) {
	cls, payload, err := Classify(body)
	if err != nil {
		return nil, err
	}
	if cls == ClassUnknown {
		return nil, &UnclassifiableShapeError{}
	}

	credential := ResolveCredential(xAPIKey, authorization)
	if err := Authorize(cls, credential, r.secret); err != nil {
		return nil, err
	}

	switch cls {
	case ClassVoice:
		return r.voice.HandleVoice(ctx, payload.(VoicePayload))
	case ClassHoneypot:
		return r.honeypot.HandleHoneypot(ctx, payload.(HoneypotPayload))
	default:
		// Unreachable: ClassUnknown is rejected above.
		return nil, fmt.Errorf("no handler for classification %q", cls)
	}
}
