package detect

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
)

// randomSource wraps a seeded PRNG behind a mutex so the mock detectors are
// safe under concurrent requests. A fixed seed makes test runs reproducible.
type randomSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newRandomSource(seed uint64) *randomSource {
	return &randomSource{rng: rand.New(rand.NewPCG(seed, seed))}
}

// confidence returns a mock confidence in [0.70, 0.99).
func (r *randomSource) confidence() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return 0.70 + r.rng.Float64()*0.29
}

func (r *randomSource) pick(options []string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return options[r.rng.IntN(len(options))]
}

// MockVoiceDetector returns randomized verdicts without analyzing audio.
type MockVoiceDetector struct {
	random *randomSource
}

// NewMockVoiceDetector creates a mock voice detector with the given seed.
func NewMockVoiceDetector(seed uint64) *MockVoiceDetector {
	return &MockVoiceDetector{random: newRandomSource(seed)}
}

var voiceClassifications = []string{"human", "synthetic"}

// DetectVoice returns a randomized human/synthetic verdict.
func (d *MockVoiceDetector) DetectVoice(_ context.Context, req VoiceRequest) (VoiceResult, error) {
	return VoiceResult{
		Classification: d.random.pick(voiceClassifications),
		Confidence:     d.random.confidence(),
		Language:       req.Language,
	}, nil
}

// MockHoneypotResponder replies with canned victim-persona messages.
type MockHoneypotResponder struct {
	random *randomSource
}

// NewMockHoneypotResponder creates a mock honeypot responder with the given seed.
func NewMockHoneypotResponder(seed uint64) *MockHoneypotResponder {
	return &MockHoneypotResponder{random: newRandomSource(seed)}
}

const honeypotPersona = "confused retiree"

var honeypotReplies = []string{
	"Oh dear, I'm not very good with computers. Could you explain that again?",
	"My grandson usually helps me with these things. What do you need exactly?",
	"I think I wrote my password down somewhere, give me a minute to find it.",
	"Is this about my bank? I got a letter from them last week too.",
	"Sorry, the phone was ringing. What was that website address again?",
}

// Respond returns a canned reply, generating a session ID on the first turn.
func (h *MockHoneypotResponder) Respond(_ context.Context, req HoneypotRequest) (HoneypotResult, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	return HoneypotResult{
		SessionID: sessionID,
		Reply:     h.random.pick(honeypotReplies),
		Persona:   honeypotPersona,
	}, nil
}

// MockTextDetector returns randomized verdicts from a fixed label set.
// Serves both the AI-text and image stub endpoints.
type MockTextDetector struct {
	random *randomSource
	labels []string
}

// NewMockAITextDetector creates a mock AI-text detector with the given seed.
func NewMockAITextDetector(seed uint64) *MockTextDetector {
	return &MockTextDetector{
		random: newRandomSource(seed),
		labels: []string{"human-written", "ai-generated"},
	}
}

// NewMockImageDetector creates a mock image detector with the given seed.
func NewMockImageDetector(seed uint64) *MockTextDetector {
	return &MockTextDetector{
		random: newRandomSource(seed),
		labels: []string{"authentic", "manipulated"},
	}
}

// Detect returns a randomized classification/confidence pair.
func (d *MockTextDetector) Detect(_ context.Context, _ string) (TextResult, error) {
	return TextResult{
		Classification: d.random.pick(d.labels),
		Confidence:     d.random.confidence(),
	}, nil
}
