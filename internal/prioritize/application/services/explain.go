package services

import (
	"strings"
	"unicode"
)

// explainRule pairs a predicate over the sub-scores with the clause it
// contributes. Rules are evaluated in order; every satisfied rule adds its
// clause.
type explainRule struct {
	applies func(Breakdown) bool
	clause  string
}

var explainRules = []explainRule{
	{func(b Breakdown) bool { return b.UrgencyScore > 95 }, "overdue - requires immediate attention"},
	{func(b Breakdown) bool { return b.UrgencyScore > 85 && b.UrgencyScore <= 95 }, "due very soon"},
	{func(b Breakdown) bool { return b.UrgencyScore > 70 && b.UrgencyScore <= 85 }, "approaching deadline"},
	{func(b Breakdown) bool { return b.ImportanceScore > 80 }, "high importance rating"},
	{func(b Breakdown) bool { return b.ImportanceScore > 50 && b.ImportanceScore <= 80 }, "moderate importance"},
	{func(b Breakdown) bool { return b.EffortScore > 70 }, "quick win opportunity"},
	{func(b Breakdown) bool { return b.EffortScore < 30 }, "significant time investment"},
	{func(b Breakdown) bool { return b.DependencyScore > 20 }, "blocks other tasks"},
}

const defaultClause = "balanced priority across all factors"

var strategyLead = map[Strategy]string{
	StrategySmartBalance:   "Balanced priority considering all factors. ",
	StrategyFastestWins:    "Prioritized for quick completion. ",
	StrategyHighImpact:     "Prioritized for maximum impact. ",
	StrategyDeadlineDriven: "Prioritized by deadline urgency. ",
}

// explain renders the clauses fired by the sub-scores into a sentence
// prefixed with the strategy's lead.
func explain(b Breakdown, strategy Strategy) string {
	return strategyLead[strategy] + capitalize(strings.Join(clausesFor(b), ", ")) + "."
}

func clausesFor(b Breakdown) []string {
	var clauses []string
	for _, rule := range explainRules {
		if rule.applies(b) {
			clauses = append(clauses, rule.clause)
		}
	}
	if len(clauses) == 0 {
		clauses = append(clauses, defaultClause)
	}
	return clauses
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
