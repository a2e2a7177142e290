// Package scoring implements the heuristic fraud risk scoring engine:
// a pure function from (text, channel) to a bounded score, a categorical
// risk level, and an audit trail of triggered rules.
package scoring

import (
	"fmt"
	"regexp"
	"strings"
)

// urlPattern matches http/https links or bare www-prefixed tokens.
// Applied to the original-case text; keyword matching uses the folded text.
var urlPattern = regexp.MustCompile(`(https?://[^\s]+|www\.[^\s]+)`)

// Link rule point values. Links in SMS are a primary smishing vector;
// links in email are routine and carry lower native risk.
const (
	linkPointsSMS   = 40
	linkPointsEmail = 15
)

// cleanFlag is the single audit line returned for a zero-score text.
const cleanFlag = "No suspicious indicators found."

// Score calculates the fraud risk for one block of text on one channel.
// Pure, deterministic, and total: any input, including the empty string,
// yields a valid result. The returned score is clamped to [0, 100].
func Score(text string, channel Channel) ScoreResult {
	score := 0
	var flags []string

	// Fold stylistic Unicode variants, then lower-case for keyword matching.
	// Link extraction below runs against the original text.
	folded, _ := NormalizeUnicode(text)
	textLower := strings.ToLower(folded)

	for _, category := range []RuleCategory{PanicCategory(), BaitCategory()} {
		matched := matchKeywords(textLower, category.Keywords)
		if len(matched) == 0 {
			continue
		}
		points := category.Points * len(matched)
		score += points
		flags = append(flags, fmt.Sprintf("%s (+%d pts): %s",
			category.Label, points, strings.Join(matched, ", ")))
	}

	if links := urlPattern.FindAllString(text, -1); len(links) > 0 {
		// Flat award per channel, not per link. Only the first match is
		// surfaced in the flag to keep the audit trail readable.
		switch channel {
		case ChannelSMS:
			score += linkPointsSMS
			flags = append(flags, fmt.Sprintf("Suspicious link found in SMS (+%d pts): %s",
				linkPointsSMS, links[0]))
		case ChannelEmail:
			score += linkPointsEmail
			flags = append(flags, fmt.Sprintf("Link found in Email (+%d pts): %s",
				linkPointsEmail, links[0]))
		}
	}

	if score > 100 {
		score = 100
	}

	if score == 0 {
		flags = []string{cleanFlag}
	}

	return ScoreResult{
		Score:     score,
		Flags:     flags,
		RiskLevel: ToRiskLevel(score),
	}
}

// matchKeywords returns the keywords found as substrings of textLower,
// preserving configured order. Each keyword counts once no matter how many
// times it occurs; substring matches inside longer words still count.
func matchKeywords(textLower string, keywords []string) []string {
	var matched []string
	for _, keyword := range keywords {
		if strings.Contains(textLower, strings.ToLower(keyword)) {
			matched = append(matched, keyword)
		}
	}
	return matched
}
