package services

import (
	"github.com/taskrankhq/taskrank/internal/prioritize/domain/value_objects"
)

// TaskDescription is the raw, externally owned view of a task that the
// scoring engine consumes. Required fields are pointers so that absent or
// null JSON values can be distinguished from zero values during validation.
// The engine treats descriptions as read-only.
type TaskDescription struct {
	ID             string              `json:"id,omitempty"`
	Title          *string             `json:"title"`
	DueDate        *value_objects.Date `json:"due_date"`
	EstimatedHours *float64            `json:"estimated_hours"`
	Importance     *int                `json:"importance"`
	Dependencies   []string            `json:"dependencies,omitempty"`
}
