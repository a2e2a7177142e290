package scoring

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// RuleCategory is one named set of trigger keywords with a per-match point
// value. Categories are process-wide constants: loaded once at startup and
// read-only afterwards. Keyword order is significant -- flags list matched
// keywords in configured order.
type RuleCategory struct {
	// Name is the stable rule identifier
	Name string `yaml:"name"`
	// Label is the human-readable prefix used in audit flags
	Label string `yaml:"label"`
	// Keywords are matched case-insensitively as substrings
	Keywords []string `yaml:"keywords"`
	// Points awarded per distinct matched keyword
	Points int `yaml:"points"`
}

// RulesConfig holds the tunable keyword sets for the scoring engine.
type RulesConfig struct {
	// PanicWords override the default panic-language keyword list
	PanicWords []string `yaml:"panic_words"`
	// FinancialBait override the default financial-bait keyword list
	FinancialBait []string `yaml:"financial_bait"`
}

var (
	rulesConfig   *RulesConfig
	rulesConfigMu sync.RWMutex
)

// defaultPanicWords provides the hardcoded fallback panic-language keywords
// used when no YAML config is loaded. Pressure and urgency phrasing typical
// of phishing and smishing lures.
var defaultPanicWords = []string{
	"urgent", "suspended", "immediate", "action required", "warning", "verify", "alert",
}

// defaultFinancialBait provides the hardcoded fallback financial-bait keywords.
var defaultFinancialBait = []string{
	"winner", "lottery", "prize", "cash", "bank", "account", "money", "free", "gift",
}

// Per-match point values. The link rule is channel-weighted and lives in the
// engine; these two categories always award the same amount per keyword.
const (
	panicPoints = 20
	baitPoints  = 20
)

// LoadRules loads keyword overrides from rules.yaml in configDir.
// A missing file is not an error: the engine falls back to the hardcoded
// defaults so the service works without any configuration files.
func LoadRules(configDir string) error {
	path := filepath.Join(configDir, "rules.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read rules config file: %w", err)
	}

	var config RulesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse rules config: %w", err)
	}

	rulesConfigMu.Lock()
	rulesConfig = &config
	rulesConfigMu.Unlock()

	return nil
}

// ResetRules resets the loaded rules config to nil.
// This is primarily used in tests to ensure a clean state.
func ResetRules() {
	rulesConfigMu.Lock()
	rulesConfig = nil
	rulesConfigMu.Unlock()
}

// PanicCategory returns the active panic-language rule category.
func PanicCategory() RuleCategory {
	rulesConfigMu.RLock()
	defer rulesConfigMu.RUnlock()

	keywords := defaultPanicWords
	if rulesConfig != nil && len(rulesConfig.PanicWords) > 0 {
		keywords = rulesConfig.PanicWords
	}
	return RuleCategory{
		Name:     "panic_language",
		Label:    "Panic words detected",
		Keywords: keywords,
		Points:   panicPoints,
	}
}

// BaitCategory returns the active financial-bait rule category.
func BaitCategory() RuleCategory {
	rulesConfigMu.RLock()
	defer rulesConfigMu.RUnlock()

	keywords := defaultFinancialBait
	if rulesConfig != nil && len(rulesConfig.FinancialBait) > 0 {
		keywords = rulesConfig.FinancialBait
	}
	return RuleCategory{
		Name:     "financial_bait",
		Label:    "Financial bait detected",
		Keywords: keywords,
		Points:   baitPoints,
	}
}
