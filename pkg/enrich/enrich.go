// Package enrich rebuilds denormalized read views from the flat collections.
// It is strictly read-only: indexes are rebuilt per query (arena+index) and
// a dangling reference never errors — it resolves to a placeholder so the
// view stays renderable even over corrupted peripheral data.
package enrich

import (
	"cropdiary/entities"
	"cropdiary/pkg/record"
)

// Placeholders substituted for missing linked records.
const (
	UnknownCrop  = "Unknown Crop"
	UnknownArea  = "Unknown Area"
	UnknownField = "Unknown Field"
	UnknownTask  = "Unknown Task"
)

type Indexes struct {
	Fields    map[string]entities.Field
	Areas     map[string]entities.Area
	Crops     map[string]entities.CropInstance
	Templates map[string]entities.TaskTemplate
	TaskTypes map[string]entities.TaskType
	Occs      map[string]entities.TaskOccurrence
	Units     map[string]entities.Unit
	Statuses  map[string]entities.StatusCode
	Reasons   map[string]entities.ReasonCode
}

func BuildIndexes(r *record.Repository) *Indexes {
	ix := &Indexes{
		Fields:    map[string]entities.Field{},
		Areas:     map[string]entities.Area{},
		Crops:     map[string]entities.CropInstance{},
		Templates: map[string]entities.TaskTemplate{},
		TaskTypes: map[string]entities.TaskType{},
		Occs:      map[string]entities.TaskOccurrence{},
		Units:     map[string]entities.Unit{},
		Statuses:  map[string]entities.StatusCode{},
		Reasons:   map[string]entities.ReasonCode{},
	}
	for _, v := range r.Fields() {
		ix.Fields[v.ID] = v
	}
	for _, v := range r.Areas() {
		ix.Areas[v.ID] = v
	}
	for _, v := range r.Crops() {
		ix.Crops[v.ID] = v
	}
	for _, v := range r.Templates() {
		ix.Templates[v.ID] = v
	}
	for _, v := range r.TaskTypes() {
		ix.TaskTypes[v.ID] = v
	}
	for _, v := range r.Occurrences() {
		ix.Occs[v.ID] = v
	}
	for _, v := range r.Units() {
		ix.Units[v.ID] = v
	}
	for _, v := range r.Statuses() {
		ix.Statuses[v.ID] = v
	}
	for _, v := range r.Reasons() {
		ix.Reasons[v.ID] = v
	}
	return ix
}

// DisplayName picks a human name from a localized map, preferring English.
func DisplayName(names map[string]string, fallback string) string {
	if v := names["en"]; v != "" {
		return v
	}
	for _, v := range names {
		if v != "" {
			return v
		}
	}
	return fallback
}

type EnrichedLog struct {
	entities.Log
	TaskTypeID string `json:"task_type_id,omitempty"`
	TaskName   string `json:"task_name"`
	TaskIcon   string `json:"task_icon,omitempty"`
	CropName   string `json:"crop_name"`
	AreaID     string `json:"area_id,omitempty"`
	AreaName   string `json:"area_name"`
	FieldID    string `json:"field_id,omitempty"`
	FieldName  string `json:"field_name"`
	UnitSymbol string `json:"unit_symbol,omitempty"`
	SkipReason string `json:"skip_reason,omitempty"`
}

type EnrichedTask struct {
	entities.TaskOccurrence
	TaskTypeID          string   `json:"task_type_id,omitempty"`
	TaskName            string   `json:"task_name"`
	TaskIcon            string   `json:"task_icon,omitempty"`
	CropName            string   `json:"crop_name"`
	AreaID              string   `json:"area_id,omitempty"`
	AreaName            string   `json:"area_name"`
	FieldID             string   `json:"field_id,omitempty"`
	FieldName           string   `json:"field_name"`
	StatusWeight        int      `json:"status_weight"`
	RequiresQuantity    bool     `json:"requires_quantity"`
	RecommendedQuantity *float64 `json:"recommended_quantity,omitempty"`
	UnitSymbol          string   `json:"unit_symbol,omitempty"`
}

// location walks crop → area → field, degrading per hop.
func (ix *Indexes) location(cropID string) (cropName, areaID, areaName, fieldID, fieldName string) {
	cropName, areaName, fieldName = UnknownCrop, UnknownArea, UnknownField
	crop, ok := ix.Crops[cropID]
	if !ok {
		return
	}
	cropName = crop.Name
	area, ok := ix.Areas[crop.AreaID]
	if !ok {
		return
	}
	areaID, areaName = area.ID, area.Name
	field, ok := ix.Fields[area.FieldID]
	if !ok {
		return
	}
	fieldID, fieldName = field.ID, field.Name
	return
}

// task walks occurrence → template → task type.
func (ix *Indexes) task(templateID string) (typeID, name, icon string) {
	name = UnknownTask
	tpl, ok := ix.Templates[templateID]
	if !ok {
		return
	}
	tt, ok := ix.TaskTypes[tpl.TaskTypeID]
	if !ok {
		return
	}
	return tt.ID, DisplayName(tt.Names, UnknownTask), tt.Icon
}

func (ix *Indexes) Log(l entities.Log) EnrichedLog {
	out := EnrichedLog{Log: l}
	out.CropName, out.AreaID, out.AreaName, out.FieldID, out.FieldName = ix.location(l.CropInstanceID)
	if occ, ok := ix.Occs[l.TaskOccurrenceID]; ok {
		out.TaskTypeID, out.TaskName, out.TaskIcon = ix.task(occ.TemplateID)
	} else {
		out.TaskName = UnknownTask
	}
	if u, ok := ix.Units[l.UnitID]; ok {
		out.UnitSymbol = u.Symbol
	}
	if rc, ok := ix.Reasons[l.SkipReasonID]; ok {
		out.SkipReason = rc.Name
	}
	return out
}

func (ix *Indexes) Task(o entities.TaskOccurrence) EnrichedTask {
	out := EnrichedTask{TaskOccurrence: o}
	out.CropName, out.AreaID, out.AreaName, out.FieldID, out.FieldName = ix.location(o.CropInstanceID)
	out.TaskTypeID, out.TaskName, out.TaskIcon = ix.task(o.TemplateID)
	if tpl, ok := ix.Templates[o.TemplateID]; ok {
		out.RequiresQuantity = tpl.RequiresQuantity
		out.RecommendedQuantity = tpl.RecommendedQuantity
		if u, ok := ix.Units[tpl.DefaultUnitID]; ok {
			out.UnitSymbol = u.Symbol
		}
	}
	if sc, ok := ix.Statuses[o.StatusID]; ok {
		out.StatusWeight = sc.Priority
	}
	return out
}
