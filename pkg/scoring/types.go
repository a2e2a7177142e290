package scoring

// Channel identifies the message medium being scored.
// Link risk is weighted differently per channel: links in SMS are a strong
// smishing indicator, links in email are routine and carry less weight.
type Channel string

const (
	// ChannelSMS scores text received as an SMS message
	ChannelSMS Channel = "sms"
	// ChannelEmail scores text received as an email body
	ChannelEmail Channel = "email"
)

// String returns the string representation of a Channel.
func (c Channel) String() string {
	return string(c)
}

// RiskLevel categorizes a numeric risk score into a human-readable tier.
type RiskLevel string

const (
	// RiskLow indicates little or no fraud evidence (score < 30)
	RiskLow RiskLevel = "Low"
	// RiskMedium indicates notable fraud evidence (30 <= score < 60)
	RiskMedium RiskLevel = "Medium"
	// RiskHigh indicates strong fraud evidence (score >= 60)
	RiskHigh RiskLevel = "High"
)

// String returns the string representation of a RiskLevel.
func (l RiskLevel) String() string {
	return string(l)
}

// ToRiskLevel converts a clamped score to a RiskLevel.
// Boundaries are inclusive on the lower bound of each tier.
func ToRiskLevel(score int) RiskLevel {
	if score >= 60 {
		return RiskHigh
	}
	if score >= 30 {
		return RiskMedium
	}
	return RiskLow
}

// ScoreResult is the verdict produced by the scoring engine for one text.
// Constructed fresh per call and never mutated afterwards.
type ScoreResult struct {
	// Score is the accumulated heuristic risk, clamped to [0, 100]
	Score int `json:"score"`
	// Flags is the audit trail: one line per triggered rule naming the rule,
	// its point contribution, and the matched evidence. A clean text carries
	// exactly one "no indicators" flag.
	Flags []string `json:"flags"`
	// RiskLevel is the categorical tier derived from the clamped Score
	RiskLevel RiskLevel `json:"risk_level"`
}

// IsClean returns true if no rule triggered for the scored text.
func (r *ScoreResult) IsClean() bool {
	return r.Score == 0
}

// IsHigh returns true if the result falls in the High tier.
func (r *ScoreResult) IsHigh() bool {
	return r.RiskLevel == RiskHigh
}
