// Package record gives the core typed whole-collection access over the
// key/value store. Every collection is one key holding a JSON array; callers
// read the whole collection, transform, and write the whole collection back.
// There are no partial-record updates and no foreign keys at this layer —
// integrity is the engines' job.
package record

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"strings"

	"cropdiary/entities"
	"cropdiary/pkg/store"
)

// SchemaVersion is bumped whenever the stored shape changes; Init runs the
// migration hook when it finds an older version on disk.
const SchemaVersion = 3

// Shared failure taxonomy. Reads never fail; mutating engines return
// ErrNotFound/ErrInvalidInput before touching any collection and ErrStorage
// when the store rejects a write.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrStorage      = errors.New("record store write failed")
)

// Collection names (key suffix under the namespace).
const (
	CollFields      = "fields"
	CollAreas       = "areas"
	CollCrops       = "cropInstances"
	CollLibrary     = "libraryCrops"
	CollTemplates   = "taskTemplates"
	CollTaskTypes   = "taskTypes"
	CollOccurrences = "taskOccurrences"
	CollLogs        = "logs"
	CollUnits       = "units"
	CollStatuses    = "statusCodes"
	CollReasons     = "reasonCodes"
	CollPhotos      = "photos"
)

var allCollections = []string{
	CollFields, CollAreas, CollCrops, CollLibrary, CollTemplates,
	CollTaskTypes, CollOccurrences, CollLogs, CollUnits, CollStatuses,
	CollReasons, CollPhotos,
}

type Repository struct {
	st store.RecordStore
	ns string
}

func New(st store.RecordStore, namespace string) *Repository {
	if strings.TrimSpace(namespace) == "" {
		namespace = "cropdiary"
	}
	return &Repository{st: st, ns: namespace}
}

func (r *Repository) key(coll string) string { return r.ns + ":" + coll }

// Init self-heals malformed collections to empty arrays and brings the
// stored schema version up to date.
func (r *Repository) Init() {
	for _, coll := range allCollections {
		raw, ok := r.st.Read(r.key(coll))
		if !ok {
			continue
		}
		var probe []json.RawMessage
		if err := json.Unmarshal([]byte(raw), &probe); err != nil {
			log.Printf("[record] collection %s malformed, resetting", coll)
			r.st.Write(r.key(coll), "[]")
		}
	}

	stored := r.storedVersion()
	if stored < SchemaVersion {
		r.migrate(stored)
		r.st.Write(r.key("_meta"), `{"schemaVersion":`+strconv.Itoa(SchemaVersion)+`}`)
	}
}

func (r *Repository) storedVersion() int {
	raw, ok := r.st.Read(r.key("_meta"))
	if !ok {
		return 0
	}
	var meta struct {
		SchemaVersion int `json:"schemaVersion"`
	}
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return 0
	}
	return meta.SchemaVersion
}

// migrate upgrades collections written by schema versions older than the
// current one. Nothing to rewrite yet; the hook exists so version bumps have
// one obvious place to land.
func (r *Repository) migrate(from int) {
	if from > 0 {
		log.Printf("[record] schema %d -> %d", from, SchemaVersion)
	}
}

// loadColl never fails: absent or malformed content reads as empty.
func loadColl[T any](r *Repository, coll string) []T {
	raw, ok := r.st.Read(r.key(coll))
	if !ok {
		return nil
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Printf("[record] load %s: %v", coll, err)
		return nil
	}
	return out
}

// saveColl replaces the whole collection in a single write.
func saveColl[T any](r *Repository, coll string, rows []T) bool {
	if rows == nil {
		rows = []T{}
	}
	b, err := json.Marshal(rows)
	if err != nil {
		log.Printf("[record] marshal %s: %v", coll, err)
		return false
	}
	return r.st.Write(r.key(coll), string(b))
}

func (r *Repository) Fields() []entities.Field { return loadColl[entities.Field](r, CollFields) }
func (r *Repository) SaveFields(rows []entities.Field) bool {
	return saveColl(r, CollFields, rows)
}

func (r *Repository) Areas() []entities.Area { return loadColl[entities.Area](r, CollAreas) }
func (r *Repository) SaveAreas(rows []entities.Area) bool { return saveColl(r, CollAreas, rows) }

func (r *Repository) Crops() []entities.CropInstance {
	return loadColl[entities.CropInstance](r, CollCrops)
}
func (r *Repository) SaveCrops(rows []entities.CropInstance) bool {
	return saveColl(r, CollCrops, rows)
}

func (r *Repository) LibraryCrops() []entities.LibraryCrop {
	return loadColl[entities.LibraryCrop](r, CollLibrary)
}
func (r *Repository) SaveLibraryCrops(rows []entities.LibraryCrop) bool {
	return saveColl(r, CollLibrary, rows)
}

func (r *Repository) Templates() []entities.TaskTemplate {
	return loadColl[entities.TaskTemplate](r, CollTemplates)
}
func (r *Repository) SaveTemplates(rows []entities.TaskTemplate) bool {
	return saveColl(r, CollTemplates, rows)
}

func (r *Repository) TaskTypes() []entities.TaskType {
	return loadColl[entities.TaskType](r, CollTaskTypes)
}
func (r *Repository) SaveTaskTypes(rows []entities.TaskType) bool {
	return saveColl(r, CollTaskTypes, rows)
}

func (r *Repository) Occurrences() []entities.TaskOccurrence {
	return loadColl[entities.TaskOccurrence](r, CollOccurrences)
}
func (r *Repository) SaveOccurrences(rows []entities.TaskOccurrence) bool {
	return saveColl(r, CollOccurrences, rows)
}

func (r *Repository) Logs() []entities.Log { return loadColl[entities.Log](r, CollLogs) }
func (r *Repository) SaveLogs(rows []entities.Log) bool { return saveColl(r, CollLogs, rows) }

func (r *Repository) Units() []entities.Unit { return loadColl[entities.Unit](r, CollUnits) }
func (r *Repository) SaveUnits(rows []entities.Unit) bool { return saveColl(r, CollUnits, rows) }

func (r *Repository) Statuses() []entities.StatusCode {
	return loadColl[entities.StatusCode](r, CollStatuses)
}
func (r *Repository) SaveStatuses(rows []entities.StatusCode) bool {
	return saveColl(r, CollStatuses, rows)
}

func (r *Repository) Reasons() []entities.ReasonCode {
	return loadColl[entities.ReasonCode](r, CollReasons)
}
func (r *Repository) SaveReasons(rows []entities.ReasonCode) bool {
	return saveColl(r, CollReasons, rows)
}

func (r *Repository) Photos() []entities.Photo { return loadColl[entities.Photo](r, CollPhotos) }
func (r *Repository) SavePhotos(rows []entities.Photo) bool { return saveColl(r, CollPhotos, rows) }
