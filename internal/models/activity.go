package models

import "time"

const (
	ActivityTypeChecklist = "checklist"
	ActivityTypeTemplate  = "template"
	ActivityTypeTask      = "task"
	ActivityTypeSystem    = "system"
)

// Activity is an append-only log entry. User is a display-name snapshot,
// not a reference.
type Activity struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	User      string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
}
