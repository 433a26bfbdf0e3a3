// Package lifecycle is the occurrence status state machine. Status is
// authoritative data: the due/overdue/planned split is computed once when an
// occurrence is generated, and changes afterwards only on explicit user
// action. Every transition appends exactly one immutable log entry.
package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"cropdiary/entities"
	"cropdiary/pkg/record"
)

// DayFormat is the calendar-day format used for all scheduling dates.
const DayFormat = "2006-01-02"

type Engine struct {
	r   *record.Repository
	now func() time.Time
}

func New(r *record.Repository) *Engine { return &Engine{r: r, now: time.Now} }

func (e *Engine) today() string { return e.now().Format(DayFormat) }

// DeriveStatus classifies a freshly generated occurrence by comparing its
// due date against today (local calendar day, not instant). ISO day strings
// compare lexically.
func DeriveStatus(dueDate, today string) string {
	switch {
	case dueDate < today:
		return entities.StatusOverdue
	case dueDate == today:
		return entities.StatusDue
	default:
		return entities.StatusPlanned
	}
}

type CompleteInput struct {
	Quantity *float64 `json:"quantity,omitempty"`
	UnitID   string   `json:"unit_id,omitempty"`
	Notes    string   `json:"notes,omitempty"`
	PhotoIDs []string `json:"photo_ids,omitempty"`
}

// Complete marks the occurrence done and appends a `completed` log carrying
// the supplied quantity/unit/notes/photos. Returns the new log's id.
func (e *Engine) Complete(occID string, in CompleteInput) (string, error) {
	occs := e.r.Occurrences()
	i := indexOf(occs, occID)
	if i < 0 {
		return "", fmt.Errorf("occurrence %s: %w", occID, record.ErrNotFound)
	}
	now := e.now()
	occs[i].StatusID = entities.StatusCompleted
	occs[i].LastCompletedAt = &now
	occs[i].SnoozeUntil = ""
	occs[i].UpdatedAt = now

	lg := entities.Log{
		ID:               uuid.NewString(),
		OwnerID:          occs[i].OwnerID,
		TaskOccurrenceID: occs[i].ID,
		CropInstanceID:   occs[i].CropInstanceID,
		Action:           entities.ActionCompleted,
		Timestamp:        now,
		Quantity:         in.Quantity,
		UnitID:           in.UnitID,
		Notes:            in.Notes,
		PhotoIDs:         in.PhotoIDs,
	}
	if !e.r.SaveOccurrences(occs) {
		return "", record.ErrStorage
	}
	if !e.r.SaveLogs(append(e.r.Logs(), lg)) {
		return "", record.ErrStorage
	}
	return lg.ID, nil
}

// Skip marks the occurrence skipped with a reason code.
func (e *Engine) Skip(occID, reasonID, notes string) (string, error) {
	occs := e.r.Occurrences()
	i := indexOf(occs, occID)
	if i < 0 {
		return "", fmt.Errorf("occurrence %s: %w", occID, record.ErrNotFound)
	}
	now := e.now()
	occs[i].StatusID = entities.StatusSkipped
	occs[i].SnoozeUntil = ""
	occs[i].UpdatedAt = now

	lg := entities.Log{
		ID:               uuid.NewString(),
		OwnerID:          occs[i].OwnerID,
		TaskOccurrenceID: occs[i].ID,
		CropInstanceID:   occs[i].CropInstanceID,
		Action:           entities.ActionSkipped,
		Timestamp:        now,
		Notes:            notes,
		SkipReasonID:     reasonID,
	}
	if !e.r.SaveOccurrences(occs) {
		return "", record.ErrStorage
	}
	if !e.r.SaveLogs(append(e.r.Logs(), lg)) {
		return "", record.ErrStorage
	}
	return lg.ID, nil
}

// Snooze moves the due date and returns the occurrence to the normal
// planning window (status planned, not a separate snoozed display state;
// SnoozeUntil records the move).
func (e *Engine) Snooze(occID, newDue string) (string, error) {
	if _, err := time.Parse(DayFormat, strings.TrimSpace(newDue)); err != nil {
		return "", fmt.Errorf("snooze date %q: %w", newDue, record.ErrInvalidInput)
	}
	newDue = strings.TrimSpace(newDue)

	occs := e.r.Occurrences()
	i := indexOf(occs, occID)
	if i < 0 {
		return "", fmt.Errorf("occurrence %s: %w", occID, record.ErrNotFound)
	}
	now := e.now()
	occs[i].DueDate = newDue
	occs[i].SnoozeUntil = newDue
	occs[i].StatusID = entities.StatusPlanned
	occs[i].UpdatedAt = now

	lg := entities.Log{
		ID:               uuid.NewString(),
		OwnerID:          occs[i].OwnerID,
		TaskOccurrenceID: occs[i].ID,
		CropInstanceID:   occs[i].CropInstanceID,
		Action:           entities.ActionSnoozed,
		Timestamp:        now,
		Notes:            "snoozed to " + newDue,
	}
	if !e.r.SaveOccurrences(occs) {
		return "", record.ErrStorage
	}
	if !e.r.SaveLogs(append(e.r.Logs(), lg)) {
		return "", record.ErrStorage
	}
	return lg.ID, nil
}

// BulkComplete completes every open occurrence (planned/due/overdue) of the
// given task type under the area's crops, one log per transition. Already
// settled occurrences are left alone, so a second run returns 0.
func (e *Engine) BulkComplete(areaID, taskTypeID string) (int, error) {
	if indexOfArea(e.r.Areas(), areaID) < 0 {
		return 0, fmt.Errorf("area %s: %w", areaID, record.ErrNotFound)
	}
	cropSet := map[string]bool{}
	for _, c := range e.r.Crops() {
		if c.AreaID == areaID {
			cropSet[c.ID] = true
		}
	}
	tplType := map[string]string{}
	for _, t := range e.r.Templates() {
		tplType[t.ID] = t.TaskTypeID
	}

	occs := e.r.Occurrences()
	now := e.now()
	var added []entities.Log
	for i := range occs {
		if !cropSet[occs[i].CropInstanceID] || !open(occs[i].StatusID) {
			continue
		}
		if tplType[occs[i].TemplateID] != taskTypeID {
			continue
		}
		occs[i].StatusID = entities.StatusCompleted
		occs[i].LastCompletedAt = &now
		occs[i].SnoozeUntil = ""
		occs[i].UpdatedAt = now
		added = append(added, entities.Log{
			ID:               uuid.NewString(),
			OwnerID:          occs[i].OwnerID,
			TaskOccurrenceID: occs[i].ID,
			CropInstanceID:   occs[i].CropInstanceID,
			Action:           entities.ActionCompleted,
			Timestamp:        now,
		})
	}
	if len(added) == 0 {
		return 0, nil
	}
	if !e.r.SaveOccurrences(occs) {
		return 0, record.ErrStorage
	}
	if !e.r.SaveLogs(append(e.r.Logs(), added...)) {
		return 0, record.ErrStorage
	}
	return len(added), nil
}

func open(status string) bool {
	return status == entities.StatusPlanned || status == entities.StatusDue ||
		status == entities.StatusOverdue
}

func indexOf(occs []entities.TaskOccurrence, id string) int {
	for i := range occs {
		if occs[i].ID == id {
			return i
		}
	}
	return -1
}

func indexOfArea(areas []entities.Area, id string) int {
	for i := range areas {
		if areas[i].ID == id {
			return i
		}
	}
	return -1
}
