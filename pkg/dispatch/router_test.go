package dispatch

import (
	"context"
	"errors"
	"testing"
)

type recordingVoiceHandler struct {
	called  bool
	payload VoicePayload
}

func (h *recordingVoiceHandler) HandleVoice(_ context.Context, payload VoicePayload) (any, error) {
	h.called = true
	h.payload = payload
	return map[string]string{"handled": "voice"}, nil
}

type recordingHoneypotHandler struct {
	called  bool
	payload HoneypotPayload
}

func (h *recordingHoneypotHandler) HandleHoneypot(_ context.Context, payload HoneypotPayload) (any, error) {
	h.called = true
	h.payload = payload
	return map[string]string{"handled": "honeypot"}, nil
}

const testSecret = "secret-key-123"

func newTestRouter() (*Router, *recordingVoiceHandler, *recordingHoneypotHandler) {
	voice := &recordingVoiceHandler{}
	honeypot := &recordingHoneypotHandler{}
	return NewRouter(testSecret, voice, honeypot), voice, honeypot
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected Classification
	}{
		{"audio payload", `{"audioBase64":"UklGRg=="}`, ClassVoice},
		{"audio with language", `{"audioBase64":"UklGRg==","language":"Spanish"}`, ClassVoice},
		{"audio wins over message", `{"audioBase64":"UklGRg==","message":"hi"}`, ClassVoice},
		{"session and message", `{"sessionId":"abc","message":"hi"}`, ClassHoneypot},
		{"session only", `{"sessionId":"abc"}`, ClassHoneypot},
		{"message only", `{"message":"hello there"}`, ClassHoneypot},
		{"empty object", `{}`, ClassUnknown},
		{"unrelated keys", `{"text":"hello","foo":1}`, ClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls, _, err := Classify([]byte(tt.body))
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if cls != tt.expected {
				t.Errorf("Classify(%s) = %q, want %q", tt.body, cls, tt.expected)
			}
		})
	}
}

func TestClassifyVoiceDefaultLanguage(t *testing.T) {
	_, payload, err := Classify([]byte(`{"audioBase64":"UklGRg=="}`))
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	voice, ok := payload.(VoicePayload)
	if !ok {
		t.Fatalf("payload type = %T, want VoicePayload", payload)
	}
	if voice.Language != DefaultVoiceLanguage {
		t.Errorf("Language = %q, want %q", voice.Language, DefaultVoiceLanguage)
	}
}

func TestClassifyMalformedBody(t *testing.T) {
	bodies := []string{"", "not json", `{"audioBase64":`, `[1,2,3]`}

	for _, body := range bodies {
		_, _, err := Classify([]byte(body))
		var malformed *MalformedInputError
		if !errors.As(err, &malformed) {
			t.Errorf("Classify(%q) error = %v, want MalformedInputError", body, err)
		}
	}
}

func TestResolveCredential(t *testing.T) {
	tests := []struct {
		name          string
		xAPIKey       string
		authorization string
		expected      string
	}{
		{"x-api-key only", "key1", "", "key1"},
		{"authorization only", "", "key2", "key2"},
		{"bearer stripped", "", "Bearer key3", "key3"},
		{"bearer case-insensitive", "", "bEaReR key4", "key4"},
		{"x-api-key wins", "key5", "Bearer key6", "key5"},
		{"both empty", "", "", ""},
		{"bearer prefix alone", "", "Bearer ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveCredential(tt.xAPIKey, tt.authorization)
			if got != tt.expected {
				t.Errorf("ResolveCredential(%q, %q) = %q, want %q",
					tt.xAPIKey, tt.authorization, got, tt.expected)
			}
		})
	}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name       string
		cls        Classification
		credential string
		wantErr    bool
	}{
		{"voice valid", ClassVoice, testSecret, false},
		{"voice missing", ClassVoice, "", true},
		{"voice wrong", ClassVoice, "wrong", true},
		{"honeypot valid", ClassHoneypot, testSecret, false},
		{"honeypot wrong", ClassHoneypot, "wrong", true},
		{"unknown never gated", ClassUnknown, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.cls, tt.credential, testSecret)
			if tt.wantErr {
				var authErr *AuthError
				if !errors.As(err, &authErr) {
					t.Errorf("Authorize error = %v, want AuthError", err)
				}
			} else if err != nil {
				t.Errorf("Authorize: %v", err)
			}
		})
	}
}

func TestDispatchVoice(t *testing.T) {
	router, voice, honeypot := newTestRouter()

	result, err := router.Dispatch(context.Background(),
		[]byte(`{"audioBase64":"UklGRg=="}`), testSecret, "")
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !voice.called {
		t.Error("voice handler not invoked")
	}
	if honeypot.called {
		t.Error("honeypot handler invoked for voice payload")
	}
	if voice.payload.Language != DefaultVoiceLanguage {
		t.Errorf("Language = %q, want default", voice.payload.Language)
	}
	if result == nil {
		t.Error("Dispatch returned nil result")
	}
}

func TestDispatchHoneypot(t *testing.T) {
	router, voice, honeypot := newTestRouter()

	_, err := router.Dispatch(context.Background(),
		[]byte(`{"sessionId":"abc","message":"hi"}`), "", "Bearer "+testSecret)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !honeypot.called {
		t.Error("honeypot handler not invoked")
	}
	if voice.called {
		t.Error("voice handler invoked for honeypot payload")
	}
	if honeypot.payload.SessionID != "abc" || honeypot.payload.Message != "hi" {
		t.Errorf("payload = %+v, want decoded session and message", honeypot.payload)
	}
}

func TestDispatchAuthFailureSkipsHandler(t *testing.T) {
	router, voice, _ := newTestRouter()

	_, err := router.Dispatch(context.Background(),
		[]byte(`{"audioBase64":"UklGRg=="}`), "wrong-key", "")

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("Dispatch error = %v, want AuthError", err)
	}
	if voice.called {
		t.Error("handler invoked despite auth failure")
	}
}

func TestDispatchMissingCredential(t *testing.T) {
	router, _, honeypot := newTestRouter()

	_, err := router.Dispatch(context.Background(), []byte(`{"message":"hi"}`), "", "")

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("Dispatch error = %v, want AuthError", err)
	}
	if honeypot.called {
		t.Error("handler invoked despite missing credential")
	}
}

func TestDispatchUnknownShape(t *testing.T) {
	router, voice, honeypot := newTestRouter()

	// Unknown shape rejects regardless of credential validity.
	for _, credential := range []string{testSecret, "wrong", ""} {
		_, err := router.Dispatch(context.Background(), []byte(`{}`), credential, "")

		var unclassifiable *UnclassifiableShapeError
		if !errors.As(err, &unclassifiable) {
			t.Errorf("Dispatch error = %v, want UnclassifiableShapeError", err)
		}
	}
	if voice.called || honeypot.called {
		t.Error("handler invoked for unclassifiable payload")
	}
}

func TestDispatchMalformedBody(t *testing.T) {
	router, _, _ := newTestRouter()

	_, err := router.Dispatch(context.Background(), []byte("not json"), testSecret, "")

	var malformed *MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("Dispatch error = %v, want MalformedInputError", err)
	}
}
