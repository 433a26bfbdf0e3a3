package enrich

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropdiary/entities"
	"cropdiary/pkg/record"
	"cropdiary/pkg/store"
)

func fixtureRepo(t *testing.T) *record.Repository {
	t.Helper()
	r := record.New(store.NewMemory(), "test")
	r.Seed()
	r.SaveFields([]entities.Field{{ID: "f1", OwnerID: "u1", Name: "Home field"}})
	r.SaveAreas([]entities.Area{{ID: "a1", FieldID: "f1", OwnerID: "u1", Name: "Bed 1"}})
	r.SaveCrops([]entities.CropInstance{{ID: "c1", OwnerID: "u1", AreaID: "a1", Name: "Tomato"}})
	r.SaveOccurrences([]entities.TaskOccurrence{{
		ID: "o1", OwnerID: "u1", CropInstanceID: "c1", TemplateID: "tpl-watering",
		DueDate: "2026-08-24", StatusID: entities.StatusDue,
	}})
	return r
}

func TestLogEnrichmentFullChain(t *testing.T) {
	r := fixtureRepo(t)
	ix := BuildIndexes(r)

	qty := 5.0
	el := ix.Log(entities.Log{
		ID: "l1", TaskOccurrenceID: "o1", CropInstanceID: "c1",
		Action: entities.ActionCompleted, Timestamp: time.Now(),
		Quantity: &qty, UnitID: record.UnitLiter,
	})

	assert.Equal(t, "Tomato", el.CropName)
	assert.Equal(t, "Bed 1", el.AreaName)
	assert.Equal(t, "Home field", el.FieldName)
	assert.Equal(t, "f1", el.FieldID)
	assert.Equal(t, "Watering", el.TaskName)
	assert.Equal(t, record.TaskWatering, el.TaskTypeID)
	assert.Equal(t, "L", el.UnitSymbol)
}

func TestLogEnrichmentDanglingReferences(t *testing.T) {
	r := record.New(store.NewMemory(), "test")
	ix := BuildIndexes(r)

	el := ix.Log(entities.Log{ID: "l1", TaskOccurrenceID: "ghost-occ", CropInstanceID: "ghost-crop"})

	assert.Equal(t, UnknownCrop, el.CropName)
	assert.Equal(t, UnknownArea, el.AreaName)
	assert.Equal(t, UnknownField, el.FieldName)
	assert.Equal(t, UnknownTask, el.TaskName)
	assert.Empty(t, el.UnitSymbol)
}

func TestLogEnrichmentPartialChain(t *testing.T) {
	// crop exists but its area is gone: crop name resolves, the rest degrade
	r := record.New(store.NewMemory(), "test")
	r.SaveCrops([]entities.CropInstance{{ID: "c1", AreaID: "gone", Name: "Basil"}})
	ix := BuildIndexes(r)

	el := ix.Log(entities.Log{ID: "l1", CropInstanceID: "c1"})
	assert.Equal(t, "Basil", el.CropName)
	assert.Equal(t, UnknownArea, el.AreaName)
	assert.Equal(t, UnknownField, el.FieldName)
}

func TestTaskEnrichment(t *testing.T) {
	r := fixtureRepo(t)
	ix := BuildIndexes(r)

	occ := r.Occurrences()[0]
	et := ix.Task(occ)

	assert.Equal(t, "Watering", et.TaskName)
	assert.Equal(t, "Tomato", et.CropName)
	assert.Equal(t, "a1", et.AreaID)
	assert.True(t, et.RequiresQuantity)
	require.NotNil(t, et.RecommendedQuantity)
	assert.Equal(t, 5.0, *et.RecommendedQuantity)
	assert.Equal(t, 50, et.StatusWeight, "due weight from seeded status codes")
}

func TestDisplayNamePrefersEnglish(t *testing.T) {
	assert.Equal(t, "Watering", DisplayName(map[string]string{"th": "รดน้ำ", "en": "Watering"}, "?"))
	assert.Equal(t, "รดน้ำ", DisplayName(map[string]string{"th": "รดน้ำ"}, "?"))
	assert.Equal(t, "fallback", DisplayName(nil, "fallback"))
}
