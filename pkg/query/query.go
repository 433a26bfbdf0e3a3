// Package query is the read side: filtering, sorting, pagination and
// aggregation over enriched logs and occurrences. Everything here works on
// whole collections re-joined per call; data problems degrade, they never
// error.
package query

import (
	"sort"
	"time"

	"cropdiary/entities"
	"cropdiary/pkg/enrich"
	"cropdiary/pkg/lifecycle"
	"cropdiary/pkg/record"
)

const DefaultPageSize = 50

type Engine struct {
	r   *record.Repository
	now func() time.Time
}

func New(r *record.Repository) *Engine { return &Engine{r: r, now: time.Now} }

// Filters narrow the candidate set; an empty filter is a no-op, never
// "match nothing". StartDate/EndDate are inclusive day bounds; an
// unparsable bound leaves that side unbounded.
type Filters struct {
	OwnerID        string `json:"owner_id,omitempty"`
	FieldID        string `json:"field_id,omitempty"`
	AreaID         string `json:"area_id,omitempty"`
	CropInstanceID string `json:"crop_instance_id,omitempty"`
	TaskTypeID     string `json:"task_type_id,omitempty"`
	StatusID       string `json:"status_id,omitempty"`
	StartDate      string `json:"start_date,omitempty"`
	EndDate        string `json:"end_date,omitempty"`
}

type LogPage struct {
	Logs       []enrich.EnrichedLog `json:"logs"`
	TotalCount int                  `json:"total_count"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
}

// ListLogs returns one page of the filtered logbook, most recent first.
// TotalCount is the filtered set size before pagination.
func (q *Engine) ListLogs(f Filters, page, pageSize int) LogPage {
	ix := enrich.BuildIndexes(q.r)
	logs := q.filteredLogs(ix, f)

	sort.Slice(logs, func(i, j int) bool {
		if !logs[i].Timestamp.Equal(logs[j].Timestamp) {
			return logs[i].Timestamp.After(logs[j].Timestamp)
		}
		return logs[i].ID < logs[j].ID
	})

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	total := len(logs)
	lo := (page - 1) * pageSize
	if lo > total {
		lo = total
	}
	hi := lo + pageSize
	if hi > total {
		hi = total
	}
	out := make([]enrich.EnrichedLog, 0, hi-lo)
	out = append(out, logs[lo:hi]...)
	return LogPage{Logs: out, TotalCount: total, Page: page, PageSize: pageSize}
}

func (q *Engine) filteredLogs(ix *enrich.Indexes, f Filters) []enrich.EnrichedLog {
	from, fromOK := dayStart(f.StartDate)
	to, toOK := dayStart(f.EndDate)
	if toOK {
		to = to.AddDate(0, 0, 1) // inclusive end-of-day
	}

	var out []enrich.EnrichedLog
	for _, l := range q.r.Logs() {
		if f.OwnerID != "" && l.OwnerID != f.OwnerID {
			continue
		}
		if f.CropInstanceID != "" && l.CropInstanceID != f.CropInstanceID {
			continue
		}
		if fromOK && l.Timestamp.Before(from) {
			continue
		}
		if toOK && !l.Timestamp.Before(to) {
			continue
		}
		el := ix.Log(l)
		if f.AreaID != "" && el.AreaID != f.AreaID {
			continue
		}
		if f.FieldID != "" && el.FieldID != f.FieldID {
			continue
		}
		if f.TaskTypeID != "" && el.TaskTypeID != f.TaskTypeID {
			continue
		}
		if f.StatusID != "" {
			occ, ok := ix.Occs[l.TaskOccurrenceID]
			if !ok || occ.StatusID != f.StatusID {
				continue
			}
		}
		out = append(out, el)
	}
	return out
}

// dayStart parses a YYYY-MM-DD bound in local time; ok=false means
// unbounded on that side.
func dayStart(day string) (time.Time, bool) {
	if day == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(lifecycle.DayFormat, day, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// fallback weights for status records missing from the status table.
var statusWeight = map[string]int{
	entities.StatusOverdue:   60,
	entities.StatusDue:       50,
	entities.StatusPlanned:   40,
	entities.StatusSnoozed:   30,
	entities.StatusSkipped:   20,
	entities.StatusCompleted: 10,
}

// ListTasks returns the owner's occurrences enriched and sorted for the
// to-do view: urgency first, then priority, then soonest due date.
func (q *Engine) ListTasks(ownerID string) []enrich.EnrichedTask {
	ix := enrich.BuildIndexes(q.r)
	out := []enrich.EnrichedTask{}
	for _, o := range q.r.Occurrences() {
		if ownerID != "" && o.OwnerID != ownerID {
			continue
		}
		et := ix.Task(o)
		if et.StatusWeight == 0 {
			et.StatusWeight = statusWeight[o.StatusID]
		}
		out = append(out, et)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.StatusWeight != b.StatusWeight {
			return a.StatusWeight > b.StatusWeight
		}
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.DueDate != b.DueDate {
			return a.DueDate < b.DueDate
		}
		return a.ID < b.ID
	})
	return out
}

type Stats struct {
	Overdue   int `json:"overdue"`
	DueToday  int `json:"due_today"`
	ThisWeek  int `json:"this_week"`
	Completed int `json:"completed"`
}

// TaskStats summarizes the owner's occurrences for the dashboard header.
func (q *Engine) TaskStats(ownerID string) Stats {
	today := q.now().Format(lifecycle.DayFormat)
	weekEnd := q.now().AddDate(0, 0, 6).Format(lifecycle.DayFormat)

	var s Stats
	for _, o := range q.r.Occurrences() {
		if ownerID != "" && o.OwnerID != ownerID {
			continue
		}
		switch o.StatusID {
		case entities.StatusCompleted:
			s.Completed++
			continue
		case entities.StatusSkipped:
			continue
		}
		if o.DueDate < today {
			s.Overdue++
			continue
		}
		if o.DueDate == today {
			s.DueToday++
		}
		if o.DueDate <= weekEnd {
			s.ThisWeek++
		}
	}
	return s
}
