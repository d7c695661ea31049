package services

import "strings"

// Strategy selects how sub-scores are weighted into a priority score.
type Strategy int

const (
	StrategySmartBalance Strategy = iota
	StrategyFastestWins
	StrategyHighImpact
	StrategyDeadlineDriven
)

// StrategyWeights maps the four scoring factors to their multipliers.
// Weights are applied directly and are not required to sum to 1.
type StrategyWeights struct {
	Urgency      float64
	Importance   float64
	Effort       float64
	Dependencies float64
}

var strategyNames = map[Strategy]string{
	StrategySmartBalance:   "smart_balance",
	StrategyFastestWins:    "fastest_wins",
	StrategyHighImpact:     "high_impact",
	StrategyDeadlineDriven: "deadline_driven",
}

var strategyValues = map[string]Strategy{
	"smart_balance":   StrategySmartBalance,
	"fastest_wins":    StrategyFastestWins,
	"high_impact":     StrategyHighImpact,
	"deadline_driven": StrategyDeadlineDriven,
}

var strategyWeights = map[Strategy]StrategyWeights{
	StrategySmartBalance:   {Urgency: 0.35, Importance: 0.30, Effort: 0.20, Dependencies: 0.15},
	StrategyFastestWins:    {Urgency: 0.10, Importance: 0.20, Effort: 0.70, Dependencies: 0.00},
	StrategyHighImpact:     {Urgency: 0.15, Importance: 0.80, Effort: 0.05, Dependencies: 0.00},
	StrategyDeadlineDriven: {Urgency: 0.80, Importance: 0.15, Effort: 0.05, Dependencies: 0.00},
}

// ResolveStrategy maps a strategy name to the matching strategy.
// Unknown or empty names fall back to smart_balance; this is deliberate
// leniency, never an error.
func ResolveStrategy(name string) Strategy {
	s, ok := strategyValues[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return StrategySmartBalance
	}
	return s
}

// String returns the wire name of the strategy.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "unknown"
}

// Weights returns the weight profile for the strategy.
func (s Strategy) Weights() StrategyWeights {
	if w, ok := strategyWeights[s]; ok {
		return w
	}
	return strategyWeights[StrategySmartBalance]
}

// MarshalJSON encodes the strategy by name.
func (s Strategy) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}
