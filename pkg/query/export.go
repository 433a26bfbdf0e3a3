package query

import (
	"encoding/json"
	"time"

	"cropdiary/entities"
	"cropdiary/pkg/enrich"
)

type ExportMetadata struct {
	ExportedAt time.Time `json:"exported_at"`
	Filters    Filters   `json:"filters"`
	LogCount   int       `json:"log_count"`
}

type ExportSummary struct {
	LogCount        int     `json:"log_count"`
	EstimatedSizeKB float64 `json:"estimated_size_kb"`
}

type ExportPayload struct {
	Metadata ExportMetadata       `json:"metadata"`
	Logs     []enrich.EnrichedLog `json:"logs"`
	Photos   []entities.Photo     `json:"photos,omitempty"`
}

// Summarize estimates the export without building it: log count plus the
// serialized size of {metadata, logs}, photo payloads excluded.
func (q *Engine) Summarize(f Filters) ExportSummary {
	p := q.export(f, false)
	b, _ := json.Marshal(p)
	return ExportSummary{
		LogCount:        p.Metadata.LogCount,
		EstimatedSizeKB: round1(float64(len(b)) / 1024),
	}
}

// Export builds the full payload. Photo records are attached only when
// requested, deduplicated by id across all selected logs.
func (q *Engine) Export(f Filters, includePhotos bool) ExportPayload {
	return q.export(f, includePhotos)
}

func (q *Engine) export(f Filters, includePhotos bool) ExportPayload {
	ix := enrich.BuildIndexes(q.r)
	logs := q.filteredLogs(ix, f)
	p := ExportPayload{
		Metadata: ExportMetadata{ExportedAt: q.now(), Filters: f, LogCount: len(logs)},
		Logs:     logs,
	}
	if !includePhotos {
		return p
	}
	byID := map[string]entities.Photo{}
	for _, ph := range q.r.Photos() {
		byID[ph.ID] = ph
	}
	seen := map[string]bool{}
	for _, l := range logs {
		for _, id := range l.PhotoIDs {
			if seen[id] {
				continue
			}
			seen[id] = true
			if ph, ok := byID[id]; ok {
				p.Photos = append(p.Photos, ph)
			}
		}
	}
	return p
}
