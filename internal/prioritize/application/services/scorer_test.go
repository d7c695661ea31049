package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskrankhq/taskrank/internal/prioritize/domain/value_objects"
)

// fixedClock pins "today" so urgency scores are reproducible.
func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 15, 4, 5, 0, time.UTC)
	}
}

func testTask(id string, due value_objects.Date, hours float64, importance int, deps []string) TaskDescription {
	title := "Test Task " + id
	return TaskDescription{
		ID:             id,
		Title:          &title,
		DueDate:        &due,
		EstimatedHours: &hours,
		Importance:     &importance,
		Dependencies:   deps,
	}
}

func TestEngine_Score(t *testing.T) {
	today := value_objects.NewDate(2026, time.March, 10)
	engine := NewEngine(WithClock(fixedClock(2026, time.March, 10)))

	t.Run("scores the documented baseline scenario", func(t *testing.T) {
		// Due today, importance 5, 2h, no dependencies:
		// 95*0.35 + 50*0.30 + 80*0.20 + 0*0.15 = 64.25
		result, err := engine.Score(testTask("t1", today, 2, 5, nil), StrategySmartBalance)
		require.NoError(t, err)

		assert.Equal(t, 95.0, result.Breakdown.UrgencyScore)
		assert.Equal(t, 50.0, result.Breakdown.ImportanceScore)
		assert.Equal(t, 80.0, result.Breakdown.EffortScore)
		assert.Equal(t, 0.0, result.Breakdown.DependencyScore)
		assert.Equal(t, 64.25, result.PriorityScore)
		assert.Equal(t, StrategySmartBalance, result.StrategyUsed)
		assert.NotEmpty(t, result.Explanation)
	})

	t.Run("caps urgency for heavily overdue tasks", func(t *testing.T) {
		overdue := value_objects.NewDate(2026, time.February, 28) // 10 days overdue
		result, err := engine.Score(testTask("t1", overdue, 2, 5, nil), StrategySmartBalance)
		require.NoError(t, err)

		assert.Equal(t, 150.0, result.Breakdown.UrgencyScore)
	})

	t.Run("scores overdue higher than due today", func(t *testing.T) {
		overdue, err := engine.Score(testTask("a", value_objects.NewDate(2026, time.March, 9), 2, 5, nil), StrategyDeadlineDriven)
		require.NoError(t, err)
		dueToday, err := engine.Score(testTask("b", today, 2, 5, nil), StrategyDeadlineDriven)
		require.NoError(t, err)

		assert.Greater(t, overdue.PriorityScore, dueToday.PriorityScore)
	})

	t.Run("counts dependencies without an upper bound", func(t *testing.T) {
		deps := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
		result, err := engine.Score(testTask("t1", today, 2, 5, deps), StrategySmartBalance)
		require.NoError(t, err)

		assert.Equal(t, 150.0, result.Breakdown.DependencyScore)
	})

	t.Run("different strategies can produce different scores", func(t *testing.T) {
		task := testTask("t1", value_objects.NewDate(2026, time.March, 11), 1, 9, nil)

		scores := make(map[float64]bool)
		for _, strategy := range []Strategy{StrategySmartBalance, StrategyFastestWins, StrategyHighImpact, StrategyDeadlineDriven} {
			result, err := engine.Score(task, strategy)
			require.NoError(t, err)
			scores[result.PriorityScore] = true
		}

		assert.GreaterOrEqual(t, len(scores), 2, "strategies must not all be equivalent")
	})

	t.Run("unknown strategy matches smart_balance exactly", func(t *testing.T) {
		task := testTask("t1", today, 2, 5, []string{"x"})

		fallback, err := engine.Score(task, ResolveStrategy("definitely_not_a_strategy"))
		require.NoError(t, err)
		balanced, err := engine.Score(task, StrategySmartBalance)
		require.NoError(t, err)

		assert.Equal(t, balanced.PriorityScore, fallback.PriorityScore)
		assert.Equal(t, StrategySmartBalance, fallback.StrategyUsed)
	})

	t.Run("returns error when due date is missing", func(t *testing.T) {
		task := testTask("t1", today, 2, 5, nil)
		task.DueDate = nil

		_, err := engine.Score(task, StrategySmartBalance)
		assert.ErrorIs(t, err, ErrMissingDueDate)
	})

	t.Run("never mutates the input description", func(t *testing.T) {
		deps := []string{"a", "b"}
		task := testTask("t1", today, 2, 5, deps)

		_, err := engine.Score(task, StrategySmartBalance)
		require.NoError(t, err)

		assert.Equal(t, "Test Task t1", *task.Title)
		assert.Equal(t, []string{"a", "b"}, task.Dependencies)
	})
}

func TestUrgencyScore(t *testing.T) {
	tests := []struct {
		name         string
		daysUntilDue int
		want         float64
	}{
		{"overdue by one day", -1, 105},
		{"overdue by five days", -5, 125},
		{"overdue by ten days hits the cap", -10, 150},
		{"overdue by a year stays capped", -365, 150},
		{"due today", 0, 95},
		{"due tomorrow", 1, 85},
		{"due in two days", 2, 70},
		{"due in three days", 3, 70},
		{"due in four days", 4, 50},
		{"due in a week", 7, 50},
		{"due in eight days", 8, 30},
		{"due in two weeks", 14, 30},
		{"due in fifteen days", 15, 10},
		{"far future", 90, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, urgencyScore(tt.daysUntilDue))
		})
	}
}

func TestImportanceScore(t *testing.T) {
	assert.Equal(t, 10.0, importanceScore(1))
	assert.Equal(t, 50.0, importanceScore(5))
	assert.Equal(t, 100.0, importanceScore(10))
}

func TestEffortScore(t *testing.T) {
	t.Run("shorter tasks score higher", func(t *testing.T) {
		assert.Greater(t, effortScore(0.5), effortScore(4))
	})

	t.Run("floors at zero for long tasks", func(t *testing.T) {
		assert.Equal(t, 0.0, effortScore(10))
		assert.Equal(t, 0.0, effortScore(40))
	})

	t.Run("computes inverse of hours", func(t *testing.T) {
		assert.Equal(t, 95.0, effortScore(0.5))
		assert.Equal(t, 80.0, effortScore(2))
	})
}

func TestDependencyScore(t *testing.T) {
	assert.Equal(t, 0.0, dependencyScore(0))
	assert.Equal(t, 15.0, dependencyScore(1))
	assert.Equal(t, 45.0, dependencyScore(3))
}

func TestSubScoreRanges(t *testing.T) {
	// Urgency stays within [10, 150] over a wide span of offsets.
	for days := -400; days <= 400; days++ {
		score := urgencyScore(days)
		require.GreaterOrEqual(t, score, 10.0, "days=%d", days)
		require.LessOrEqual(t, score, 150.0, "days=%d", days)
	}

	for importance := 1; importance <= 10; importance++ {
		score := importanceScore(importance)
		require.GreaterOrEqual(t, score, 10.0)
		require.LessOrEqual(t, score, 100.0)
	}

	for hours := 0.5; hours <= 50; hours += 0.5 {
		score := effortScore(hours)
		require.GreaterOrEqual(t, score, 0.0)
		require.LessOrEqual(t, score, 100.0)
	}
}
