package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplain(t *testing.T) {
	t.Run("overdue clause fires above the due-today band", func(t *testing.T) {
		b := Breakdown{UrgencyScore: 110, ImportanceScore: 50, EffortScore: 50}
		got := explain(b, StrategySmartBalance)

		assert.Contains(t, got, "overdue - requires immediate attention")
		assert.NotContains(t, got, "due very soon")
	})

	t.Run("due today reads as due very soon", func(t *testing.T) {
		b := Breakdown{UrgencyScore: 95, ImportanceScore: 50, EffortScore: 50}
		assert.Contains(t, explain(b, StrategySmartBalance), "due very soon")
	})

	t.Run("urgency bands are mutually exclusive", func(t *testing.T) {
		for _, urgency := range []float64{10, 50, 85, 95, 150} {
			b := Breakdown{UrgencyScore: urgency, ImportanceScore: 50, EffortScore: 50}
			got := explain(b, StrategySmartBalance)

			fired := 0
			for _, clause := range []string{"overdue - requires immediate attention", "due very soon", "approaching deadline"} {
				if strings.Contains(got, clause) {
					fired++
				}
			}
			assert.LessOrEqual(t, fired, 1, "urgency=%v produced %q", urgency, got)
		}
	})

	t.Run("quick win and blocking clauses combine", func(t *testing.T) {
		b := Breakdown{UrgencyScore: 10, ImportanceScore: 90, EffortScore: 95, DependencyScore: 45}
		got := explain(b, StrategySmartBalance)

		assert.Contains(t, got, "high importance rating")
		assert.Contains(t, got, "quick win opportunity")
		assert.Contains(t, got, "blocks other tasks")
	})

	t.Run("falls back to the balanced clause when nothing fires", func(t *testing.T) {
		b := Breakdown{UrgencyScore: 50, ImportanceScore: 40, EffortScore: 50, DependencyScore: 15}
		got := explain(b, StrategySmartBalance)

		assert.Equal(t, "Balanced priority considering all factors. Balanced priority across all factors.", got)
	})

	t.Run("each strategy contributes its own lead", func(t *testing.T) {
		b := Breakdown{UrgencyScore: 50, ImportanceScore: 40, EffortScore: 50}

		assert.True(t, strings.HasPrefix(explain(b, StrategySmartBalance), "Balanced priority considering all factors. "))
		assert.True(t, strings.HasPrefix(explain(b, StrategyFastestWins), "Prioritized for quick completion. "))
		assert.True(t, strings.HasPrefix(explain(b, StrategyHighImpact), "Prioritized for maximum impact. "))
		assert.True(t, strings.HasPrefix(explain(b, StrategyDeadlineDriven), "Prioritized by deadline urgency. "))
	})

	t.Run("always ends with a period", func(t *testing.T) {
		b := Breakdown{UrgencyScore: 95, ImportanceScore: 90, EffortScore: 95, DependencyScore: 30}
		assert.True(t, strings.HasSuffix(explain(b, StrategySmartBalance), "."))
	})
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Due very soon", capitalize("due very soon"))
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "X", capitalize("x"))
}
