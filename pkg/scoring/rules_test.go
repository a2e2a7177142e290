package scoring

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCategories(t *testing.T) {
	ResetRules()

	pc := PanicCategory()
	if pc.Points != 20 {
		t.Errorf("panic Points = %d, want 20", pc.Points)
	}
	if len(pc.Keywords) == 0 || pc.Keywords[0] != "urgent" {
		t.Errorf("panic Keywords = %v, want default list starting with urgent", pc.Keywords)
	}

	bait := BaitCategory()
	if bait.Points != 20 {
		t.Errorf("bait Points = %d, want 20", bait.Points)
	}
	if len(bait.Keywords) == 0 || bait.Keywords[0] != "winner" {
		t.Errorf("bait Keywords = %v, want default list starting with winner", bait.Keywords)
	}
}

func TestCategoriesDisjoint(t *testing.T) {
	ResetRules()

	seen := make(map[string]bool)
	for _, k := range PanicCategory().Keywords {
		seen[k] = true
	}
	for _, k := range BaitCategory().Keywords {
		if seen[k] {
			t.Errorf("keyword %q appears in both categories", k)
		}
	}
}

func TestLoadRulesMissingFileFallsBack(t *testing.T) {
	ResetRules()

	if err := LoadRules(t.TempDir()); err != nil {
		t.Fatalf("LoadRules on empty dir: %v", err)
	}
	if got := PanicCategory().Keywords; len(got) == 0 || got[0] != "urgent" {
		t.Errorf("Keywords = %v, want defaults when rules.yaml is absent", got)
	}
}

func TestLoadRulesOverride(t *testing.T) {
	dir := t.TempDir()
	content := "panic_words:\n  - hurry\n  - deadline\nfinancial_bait:\n  - jackpot\n"
	if err := os.WriteFile(filepath.Join(dir, "rules.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	ResetRules()
	defer ResetRules()

	if err := LoadRules(dir); err != nil {
		t.Fatalf("LoadRules: %v", err)
	}

	if got := PanicCategory().Keywords; len(got) != 2 || got[0] != "hurry" || got[1] != "deadline" {
		t.Errorf("panic Keywords = %v, want override list", got)
	}
	if got := BaitCategory().Keywords; len(got) != 1 || got[0] != "jackpot" {
		t.Errorf("bait Keywords = %v, want override list", got)
	}

	// The engine scores against the overridden lists.
	result := Score("hurry, the jackpot deadline is near", ChannelSMS)
	if result.Score != 60 {
		t.Errorf("Score = %d, want 60 with overridden keywords", result.Score)
	}
}

func TestLoadRulesInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "rules.yaml"), []byte("panic_words: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	ResetRules()
	if err := LoadRules(dir); err == nil {
		t.Error("LoadRules with invalid YAML: expected error, got nil")
	}
}

func TestNormalizeUnicode(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		expected   string
		normalized bool
	}{
		{"plain ascii", "urgent", "urgent", false},
		{"fullwidth", "ｕｒｇｅｎｔ", "urgent", true},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, wasNormalized := NormalizeUnicode(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeUnicode(%q) = %q, want %q", tt.input, got, tt.expected)
			}
			if wasNormalized != tt.normalized {
				t.Errorf("wasNormalized = %v, want %v", wasNormalized, tt.normalized)
			}
		})
	}
}
