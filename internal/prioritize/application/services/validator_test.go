package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taskrankhq/taskrank/internal/prioritize/domain/value_objects"
)

func validDescription() TaskDescription {
	title := "Write release notes"
	due := value_objects.NewDate(2026, time.September, 1)
	hours := 2.0
	importance := 5
	return TaskDescription{
		ID:             "t1",
		Title:          &title,
		DueDate:        &due,
		EstimatedHours: &hours,
		Importance:     &importance,
	}
}

func TestValidateTask(t *testing.T) {
	t.Run("valid task yields no messages", func(t *testing.T) {
		assert.Empty(t, ValidateTask(validDescription()))
	})

	t.Run("reports each missing required field", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*TaskDescription)
			want   string
		}{
			{"title", func(d *TaskDescription) { d.Title = nil }, "Missing required field: title"},
			{"due_date", func(d *TaskDescription) { d.DueDate = nil }, "Missing required field: due_date"},
			{"estimated_hours", func(d *TaskDescription) { d.EstimatedHours = nil }, "Missing required field: estimated_hours"},
			{"importance", func(d *TaskDescription) { d.Importance = nil }, "Missing required field: importance"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				d := validDescription()
				tt.mutate(&d)
				assert.Equal(t, []string{tt.want}, ValidateTask(d))
			})
		}
	})

	t.Run("accumulates multiple missing fields", func(t *testing.T) {
		d := validDescription()
		d.Title = nil
		d.Importance = nil

		got := ValidateTask(d)
		assert.Len(t, got, 2)
		assert.Contains(t, got, "Missing required field: title")
		assert.Contains(t, got, "Missing required field: importance")
	})

	t.Run("rejects importance outside 1 to 10", func(t *testing.T) {
		for _, importance := range []int{0, -3, 11, 100} {
			d := validDescription()
			d.Importance = &importance
			assert.Equal(t, []string{"Importance must be between 1 and 10"}, ValidateTask(d), "importance=%d", importance)
		}
	})

	t.Run("accepts importance boundaries", func(t *testing.T) {
		for _, importance := range []int{1, 10} {
			d := validDescription()
			d.Importance = &importance
			assert.Empty(t, ValidateTask(d))
		}
	})

	t.Run("rejects estimated hours below the minimum", func(t *testing.T) {
		for _, hours := range []float64{0, 0.25, -1} {
			d := validDescription()
			d.EstimatedHours = &hours
			assert.Equal(t, []string{"Estimated hours must be at least 0.5"}, ValidateTask(d), "hours=%v", hours)
		}
	})

	t.Run("accepts the minimum estimated hours exactly", func(t *testing.T) {
		d := validDescription()
		hours := 0.5
		d.EstimatedHours = &hours
		assert.Empty(t, ValidateTask(d))
	})

	t.Run("missing field and range violation report together", func(t *testing.T) {
		d := validDescription()
		d.Title = nil
		importance := 12
		d.Importance = &importance

		got := ValidateTask(d)
		assert.Equal(t, []string{
			"Missing required field: title",
			"Importance must be between 1 and 10",
		}, got)
	})
}
