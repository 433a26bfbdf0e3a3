// Package cascade keeps the collection graph consistent on deletion. Each
// delete computes the full removal set up front, then rewrites every touched
// collection whole. Deleting something that does not exist is a no-op, not
// an error.
package cascade

import (
	"cropdiary/entities"
	"cropdiary/pkg/record"
)

type Engine struct{ r *record.Repository }

func New(r *record.Repository) *Engine { return &Engine{r: r} }

// DeleteField removes the field, its areas, their crops, those crops'
// occurrences, and every log referencing a removed crop or occurrence.
// Returns false when the field does not exist.
func (e *Engine) DeleteField(id string) (bool, error) {
	fields := e.r.Fields()
	kept := fields[:0:0]
	found := false
	for _, f := range fields {
		if f.ID == id {
			found = true
			continue
		}
		kept = append(kept, f)
	}
	if !found {
		return false, nil
	}

	areaSet := map[string]bool{}
	areas := []entities.Area{}
	for _, a := range e.r.Areas() {
		if a.FieldID == id {
			areaSet[a.ID] = true
			continue
		}
		areas = append(areas, a)
	}

	if !e.r.SaveFields(kept) {
		return false, record.ErrStorage
	}
	if !e.r.SaveAreas(areas) {
		return false, record.ErrStorage
	}
	return true, e.dropCropsUnder(areaSet)
}

// DeleteArea runs the same cascade one level lower; sibling areas and the
// parent field are untouched.
func (e *Engine) DeleteArea(id string) (bool, error) {
	areas := e.r.Areas()
	kept := areas[:0:0]
	found := false
	for _, a := range areas {
		if a.ID == id {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return false, nil
	}
	if !e.r.SaveAreas(kept) {
		return false, record.ErrStorage
	}
	return true, e.dropCropsUnder(map[string]bool{id: true})
}

func (e *Engine) dropCropsUnder(areaSet map[string]bool) error {
	cropSet := map[string]bool{}
	crops := []entities.CropInstance{}
	for _, c := range e.r.Crops() {
		if areaSet[c.AreaID] {
			cropSet[c.ID] = true
			continue
		}
		crops = append(crops, c)
	}

	occSet := map[string]bool{}
	occs := []entities.TaskOccurrence{}
	for _, o := range e.r.Occurrences() {
		if cropSet[o.CropInstanceID] {
			occSet[o.ID] = true
			continue
		}
		occs = append(occs, o)
	}

	logs := []entities.Log{}
	for _, l := range e.r.Logs() {
		if cropSet[l.CropInstanceID] || occSet[l.TaskOccurrenceID] {
			continue
		}
		logs = append(logs, l)
	}

	if !e.r.SaveCrops(crops) {
		return record.ErrStorage
	}
	if !e.r.SaveOccurrences(occs) {
		return record.ErrStorage
	}
	if !e.r.SaveLogs(logs) {
		return record.ErrStorage
	}
	return nil
}

// DeletePhoto removes the photo record and strips its id from every log's
// photo list. Logs themselves survive.
func (e *Engine) DeletePhoto(id string) (bool, error) {
	photos := e.r.Photos()
	kept := photos[:0:0]
	found := false
	for _, p := range photos {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return false, nil
	}

	logs := e.r.Logs()
	changed := false
	for i := range logs {
		ids := logs[i].PhotoIDs
		filtered := ids[:0:0]
		for _, pid := range ids {
			if pid == id {
				changed = true
				continue
			}
			filtered = append(filtered, pid)
		}
		logs[i].PhotoIDs = filtered
	}

	if !e.r.SavePhotos(kept) {
		return false, record.ErrStorage
	}
	if changed {
		if !e.r.SaveLogs(logs) {
			return false, record.ErrStorage
		}
	}
	return true, nil
}
