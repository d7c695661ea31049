package services

import "fmt"

// ValidateTask checks a task description for required fields and domain
// bounds. It accumulates every applicable message instead of stopping at the
// first failure; an empty result means the task is valid.
func ValidateTask(d TaskDescription) []string {
	var errs []string

	required := []struct {
		name    string
		present bool
	}{
		{"title", d.Title != nil},
		{"due_date", d.DueDate != nil},
		{"estimated_hours", d.EstimatedHours != nil},
		{"importance", d.Importance != nil},
	}
	for _, field := range required {
		if !field.present {
			errs = append(errs, fmt.Sprintf("Missing required field: %s", field.name))
		}
	}

	if d.Importance != nil && (*d.Importance < 1 || *d.Importance > 10) {
		errs = append(errs, "Importance must be between 1 and 10")
	}

	if d.EstimatedHours != nil && *d.EstimatedHours < 0.5 {
		errs = append(errs, "Estimated hours must be at least 0.5")
	}

	return errs
}
