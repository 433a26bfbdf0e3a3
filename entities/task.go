package entities

import "time"

// Occurrence statuses. StatusCode records are seeded with ID == name so the
// status table stays editable without breaking these constants.
const (
	StatusPlanned   = "planned"
	StatusDue       = "due"
	StatusOverdue   = "overdue"
	StatusCompleted = "completed"
	StatusSkipped   = "skipped"
	StatusSnoozed   = "snoozed"
)

type TaskType struct {
	ID            string            `json:"id"`
	Names         map[string]string `json:"names"`
	DefaultUnitID string            `json:"default_unit_id,omitempty"`
	Icon          string            `json:"icon"`
}

type TaskTemplate struct {
	ID                  string   `json:"id"`
	TaskTypeID          string   `json:"task_type_id"`
	DefaultUnitID       string   `json:"default_unit_id,omitempty"`
	DefaultIntervalDays int      `json:"default_interval_days"`
	RequiresQuantity    bool     `json:"requires_quantity"`
	RecommendedQuantity *float64 `json:"recommended_quantity,omitempty"`
}

type TaskOccurrence struct {
	ID             string `json:"id"`
	OwnerID        string `json:"owner_id"`
	CropInstanceID string `json:"crop_instance_id"`
	TemplateID     string `json:"template_id"`
	// YYYY-MM-DD
	DueDate         string     `json:"due_date"`
	ScheduledDate   string     `json:"scheduled_date"`
	StatusID        string     `json:"status_id"`
	SnoozeUntil     string     `json:"snooze_until,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	Priority        int        `json:"priority"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
