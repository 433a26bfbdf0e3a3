package cascade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropdiary/entities"
	"cropdiary/pkg/record"
	"cropdiary/pkg/store"
)

// two parallel field→area→crop→occurrence→log chains so deletions can be
// checked for collateral damage
func fixtureRepo(t *testing.T) *record.Repository {
	t.Helper()
	r := record.New(store.NewMemory(), "test")
	r.SaveFields([]entities.Field{{ID: "f1", Name: "One"}, {ID: "f2", Name: "Two"}})
	r.SaveAreas([]entities.Area{{ID: "a1", FieldID: "f1"}, {ID: "a2", FieldID: "f2"}})
	r.SaveCrops([]entities.CropInstance{{ID: "c1", AreaID: "a1"}, {ID: "c2", AreaID: "a2"}})
	r.SaveOccurrences([]entities.TaskOccurrence{
		{ID: "o1", CropInstanceID: "c1"},
		{ID: "o2", CropInstanceID: "c2"},
	})
	r.SaveLogs([]entities.Log{
		{ID: "l1", TaskOccurrenceID: "o1", CropInstanceID: "c1"},
		{ID: "l2", TaskOccurrenceID: "o2", CropInstanceID: "c2"},
		// orphan log pointing at o1 only; must go with o1's cascade
		{ID: "l3", TaskOccurrenceID: "o1", CropInstanceID: "ghost"},
	})
	return r
}

func TestDeleteFieldCascades(t *testing.T) {
	r := fixtureRepo(t)
	e := New(r)

	ok, err := e.DeleteField("f1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.Len(t, r.Fields(), 1)
	assert.Equal(t, "f2", r.Fields()[0].ID)
	require.Len(t, r.Areas(), 1)
	assert.Equal(t, "a2", r.Areas()[0].ID)
	require.Len(t, r.Crops(), 1)
	assert.Equal(t, "c2", r.Crops()[0].ID)
	require.Len(t, r.Occurrences(), 1)
	assert.Equal(t, "o2", r.Occurrences()[0].ID)
	require.Len(t, r.Logs(), 1)
	assert.Equal(t, "l2", r.Logs()[0].ID)
}

func TestDeleteFieldUnrelatedIntact(t *testing.T) {
	r := fixtureRepo(t)
	e := New(r)

	ok, err := e.DeleteField("f2")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Len(t, r.Fields(), 1)
	assert.Len(t, r.Areas(), 1)
	assert.Len(t, r.Crops(), 1)
	assert.Len(t, r.Occurrences(), 1)
	assert.Len(t, r.Logs(), 2, "l1 and the o1 orphan survive")
}

func TestDeleteAreaCascades(t *testing.T) {
	r := fixtureRepo(t)
	e := New(r)

	ok, err := e.DeleteArea("a1")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Len(t, r.Fields(), 2, "fields are never touched by an area delete")
	assert.Len(t, r.Areas(), 1)
	assert.Len(t, r.Crops(), 1)
	assert.Len(t, r.Occurrences(), 1)
	assert.Len(t, r.Logs(), 1)
}

func TestDeleteMissingIsNoOp(t *testing.T) {
	r := fixtureRepo(t)
	e := New(r)

	ok, err := e.DeleteField("ghost")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = e.DeleteArea("ghost")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Len(t, r.Fields(), 2)
	assert.Len(t, r.Logs(), 3)
}

func TestDeletePhotoStripsReferences(t *testing.T) {
	r := fixtureRepo(t)
	r.SavePhotos([]entities.Photo{{ID: "p1"}, {ID: "p2"}})
	logs := r.Logs()
	logs[0].PhotoIDs = []string{"p1", "p2"}
	logs[1].PhotoIDs = []string{"p2"}
	r.SaveLogs(logs)

	e := New(r)
	ok, err := e.DeletePhoto("p2")
	require.NoError(t, err)
	assert.True(t, ok)

	require.Len(t, r.Photos(), 1)
	logs = r.Logs()
	assert.Equal(t, []string{"p1"}, logs[0].PhotoIDs)
	assert.Empty(t, logs[1].PhotoIDs)
	assert.Len(t, logs, 3, "logs are never deleted by a photo delete")

	ok, err = e.DeletePhoto("ghost")
	require.NoError(t, err)
	assert.False(t, ok)
}
