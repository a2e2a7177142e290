// Package detect defines the stable interfaces for the detection
// sub-handlers (voice, honeypot conversation, AI text, image) and provides
// the mocked default implementations. Real detection services implement the
// same interfaces and can be swapped in without touching the router.
package detect

import "context"

// VoiceRequest carries a base64 audio sample for analysis.
type VoiceRequest struct {
	AudioBase64 string `json:"audioBase64"`
	Language    string `json:"language"`
}

// VoiceResult is a voice detection verdict.
type VoiceResult struct {
	// Classification is the verdict label, e.g. "human" or "synthetic"
	Classification string `json:"classification"`
	// Confidence is the verdict confidence from 0.0 to 1.0
	Confidence float64 `json:"confidence"`
	// Language echoes the analyzed sample language
	Language string `json:"language"`
}

// VoiceDetector analyzes an audio sample for synthetic speech.
type VoiceDetector interface {
	DetectVoice(ctx context.Context, req VoiceRequest) (VoiceResult, error)
}

// HoneypotRequest is one scammer-side turn of a honeypot conversation.
type HoneypotRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

// HoneypotResult is the honeypot agent's reply for one turn.
type HoneypotResult struct {
	// SessionID identifies the conversation; generated when the request
	// carries none
	SessionID string `json:"sessionId"`
	// Reply is the agent's next message to the scammer
	Reply string `json:"reply"`
	// Persona names the character the agent is playing
	Persona string `json:"persona"`
}

// HoneypotResponder produces the next honeypot reply for a conversation turn.
type HoneypotResponder interface {
	Respond(ctx context.Context, req HoneypotRequest) (HoneypotResult, error)
}

// TextResult is a generic content classification verdict, shared by the
// AI-text and image stubs.
type TextResult struct {
	Classification string  `json:"classification"`
	Confidence     float64 `json:"confidence"`
}

// TextDetector classifies a block of content and reports confidence.
type TextDetector interface {
	Detect(ctx context.Context, content string) (TextResult, error)
}
