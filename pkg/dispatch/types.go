// Package dispatch implements the content-sniffing request router: it
// classifies an inbound JSON payload by structural shape alone, applies
// the layered credential policy for protected shapes, and forwards to the
// matching handler. No cross-request state.
package dispatch

import "context"

// Classification is the router's verdict on which problem domain a payload
// belongs to. Derived per request, never stored.
type Classification string

const (
	// ClassVoice is an audio analysis payload (carries base64 audio)
	ClassVoice Classification = "voice"
	// ClassHoneypot is a honeypot conversation turn (session or message)
	ClassHoneypot Classification = "honeypot"
	// ClassUnknown matches no known structural pattern
	ClassUnknown Classification = "unknown"
)

// String returns the string representation of a Classification.
func (c Classification) String() string {
	return string(c)
}

// classificationDescriptions provides human-readable descriptions for logs.
var classificationDescriptions = map[Classification]string{
	ClassVoice:    "Voice detection - base64 audio analysis",
	ClassHoneypot: "Honeypot conversation turn",
	ClassUnknown:  "Unrecognized payload shape",
}

// Description returns the human-readable description for a Classification.
func (c Classification) Description() string {
	if desc, ok := classificationDescriptions[c]; ok {
		return desc
	}
	return classificationDescriptions[ClassUnknown]
}

// Protected reports whether this classification requires a valid credential
// before dispatch. Voice and honeypot payloads are always gated; the separate
// scoring endpoints are exposed unauthenticated and never pass through here.
func (c Classification) Protected() bool {
	return c == ClassVoice || c == ClassHoneypot
}

// DefaultVoiceLanguage is assumed when a voice payload omits the language field.
const DefaultVoiceLanguage = "English"

// VoicePayload is the decoded shape of a voice detection request.
type VoicePayload struct {
	// AudioBase64 is the base64-encoded audio sample
	AudioBase64 string `json:"audioBase64"`
	// Language is the declared sample language, DefaultVoiceLanguage if absent
	Language string `json:"language"`
}

// HoneypotPayload is the decoded shape of a honeypot conversation turn.
type HoneypotPayload struct {
	// SessionID identifies an ongoing conversation; may be empty on first turn
	SessionID string `json:"sessionId"`
	// Message is the scammer-side message text
	Message string `json:"message"`
}

// VoiceHandler handles a classified voice payload.
type VoiceHandler interface {
	HandleVoice(ctx context.Context, payload VoicePayload) (any, error)
}

// HoneypotHandler handles a classified honeypot conversation turn.
type HoneypotHandler interface {
	HandleHoneypot(ctx context.Context, payload HoneypotPayload) (any, error)
}
