package models

import "time"

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// DueDateLayout is the date-only format used for checklist and item due
// dates throughout the persisted layout.
const DueDateLayout = "2006-01-02"

type Checklist struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Framework   string          `json:"framework"`
	Priority    string          `json:"priority"`
	DueDate     string          `json:"dueDate"`
	Items       []ChecklistItem `json:"items"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ChecklistItem carries completion metadata alongside the flag: CompletedAt
// and CompletedBy are set exactly when Completed is true.
type ChecklistItem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	DueDate     string     `json:"dueDate,omitempty"`
	Assignee    string     `json:"assignee,omitempty"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
	Framework   string     `json:"framework"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CompletedBy string     `json:"completedBy,omitempty"`
}

// Overdue reports whether the item has a due date in the past and is still
// open. Items without a due date are never overdue.
func (item ChecklistItem) Overdue(now time.Time) bool {
	if item.Completed || item.DueDate == "" {
		return false
	}
	due, err := time.Parse(DueDateLayout, item.DueDate)
	if err != nil {
		return false
	}
	return due.Before(now)
}

func (checklist Checklist) CompletedCount() int {
	count := 0
	for _, item := range checklist.Items {
		if item.Completed {
			count++
		}
	}
	return count
}

// AllItemsCompleted is vacuously true for a checklist with no items.
func (checklist Checklist) AllItemsCompleted() bool {
	return checklist.CompletedCount() == len(checklist.Items)
}
