package entities

import "time"

// Log actions.
const (
	ActionCompleted = "completed"
	ActionSkipped   = "skipped"
	ActionSnoozed   = "snoozed"
)

// Log is append-only: created exactly once per status transition, never
// mutated afterwards, removed only by cascade when its crop or occurrence
// goes away.
type Log struct {
	ID               string    `json:"id"`
	OwnerID          string    `json:"owner_id"`
	TaskOccurrenceID string    `json:"task_occurrence_id"`
	CropInstanceID   string    `json:"crop_instance_id"`
	Action           string    `json:"action"` // completed|skipped|snoozed
	Timestamp        time.Time `json:"timestamp"`
	Quantity         *float64  `json:"quantity,omitempty"`
	UnitID           string    `json:"unit_id,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	PhotoIDs         []string  `json:"photo_ids,omitempty"`
	SkipReasonID     string    `json:"skip_reason_id,omitempty"`
}
