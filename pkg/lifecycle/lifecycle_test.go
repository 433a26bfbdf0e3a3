package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropdiary/entities"
	"cropdiary/pkg/record"
	"cropdiary/pkg/store"
)

const today = "2026-08-24"

func fixedEngine(r *record.Repository, day string) *Engine {
	e := New(r)
	ts, _ := time.Parse(DayFormat, day)
	e.now = func() time.Time { return ts }
	return e
}

func fixtureRepo(t *testing.T) *record.Repository {
	t.Helper()
	r := record.New(store.NewMemory(), "test")
	r.Seed()
	r.SaveFields([]entities.Field{{ID: "f1", OwnerID: "u1", Name: "Home field"}})
	r.SaveAreas([]entities.Area{{ID: "a1", FieldID: "f1", OwnerID: "u1", Name: "Bed 1"}})
	r.SaveCrops([]entities.CropInstance{{ID: "c1", OwnerID: "u1", AreaID: "a1", Name: "Tomato"}})
	r.SaveOccurrences([]entities.TaskOccurrence{
		{ID: "o1", OwnerID: "u1", CropInstanceID: "c1", TemplateID: "tpl-watering", DueDate: today, StatusID: entities.StatusDue},
		{ID: "o2", OwnerID: "u1", CropInstanceID: "c1", TemplateID: "tpl-fertilizing", DueDate: "2026-08-20", StatusID: entities.StatusOverdue},
	})
	return r
}

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, entities.StatusOverdue, DeriveStatus("2026-08-23", today))
	assert.Equal(t, entities.StatusDue, DeriveStatus(today, today))
	assert.Equal(t, entities.StatusPlanned, DeriveStatus("2026-08-25", today))
}

func TestComplete(t *testing.T) {
	r := fixtureRepo(t)
	e := fixedEngine(r, today)

	qty := 5.0
	logID, err := e.Complete("o1", CompleteInput{Quantity: &qty, UnitID: record.UnitLiter, Notes: "morning round"})
	require.NoError(t, err)
	require.NotEmpty(t, logID)

	occ := r.Occurrences()[0]
	assert.Equal(t, entities.StatusCompleted, occ.StatusID)
	require.NotNil(t, occ.LastCompletedAt)
	assert.Empty(t, occ.SnoozeUntil)

	logs := r.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, logID, logs[0].ID)
	assert.Equal(t, entities.ActionCompleted, logs[0].Action)
	assert.Equal(t, "o1", logs[0].TaskOccurrenceID)
	assert.Equal(t, "c1", logs[0].CropInstanceID)
	require.NotNil(t, logs[0].Quantity)
	assert.Equal(t, 5.0, *logs[0].Quantity)
}

func TestCompleteMissingOccurrence(t *testing.T) {
	r := fixtureRepo(t)
	e := fixedEngine(r, today)

	_, err := e.Complete("nope", CompleteInput{})
	require.ErrorIs(t, err, record.ErrNotFound)
	assert.Empty(t, r.Logs(), "failed mutation leaves collections untouched")
}

func TestSkip(t *testing.T) {
	r := fixtureRepo(t)
	e := fixedEngine(r, today)

	logID, err := e.Skip("o1", "weather", "rained all day")
	require.NoError(t, err)

	occ := r.Occurrences()[0]
	assert.Equal(t, entities.StatusSkipped, occ.StatusID)
	assert.Empty(t, occ.SnoozeUntil)

	logs := r.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, logID, logs[0].ID)
	assert.Equal(t, entities.ActionSkipped, logs[0].Action)
	assert.Equal(t, "weather", logs[0].SkipReasonID)
}

func TestSnooze(t *testing.T) {
	r := fixtureRepo(t)
	e := fixedEngine(r, today)

	_, err := e.Snooze("o1", "not-a-date")
	require.ErrorIs(t, err, record.ErrInvalidInput)

	_, err = e.Snooze("o1", "2026-08-28")
	require.NoError(t, err)

	occ := r.Occurrences()[0]
	assert.Equal(t, "2026-08-28", occ.DueDate)
	assert.Equal(t, "2026-08-28", occ.SnoozeUntil)
	assert.Equal(t, entities.StatusPlanned, occ.StatusID, "snooze re-enters the planning window")

	logs := r.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, entities.ActionSnoozed, logs[0].Action)
}

func TestBulkCompleteIdempotent(t *testing.T) {
	r := fixtureRepo(t)
	e := fixedEngine(r, today)

	n, err := e.BulkComplete("a1", record.TaskWatering)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "only the watering occurrence matches")
	require.Len(t, r.Logs(), 1)

	n, err = e.BulkComplete("a1", record.TaskWatering)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "second run finds nothing open")
	assert.Len(t, r.Logs(), 1)

	// the fertilizing occurrence is untouched
	assert.Equal(t, entities.StatusOverdue, r.Occurrences()[1].StatusID)
}

func TestBulkCompleteMissingArea(t *testing.T) {
	r := fixtureRepo(t)
	e := fixedEngine(r, today)
	_, err := e.BulkComplete("ghost", record.TaskWatering)
	require.ErrorIs(t, err, record.ErrNotFound)
}

func TestCreateCropSeedsOccurrence(t *testing.T) {
	r := fixtureRepo(t)
	r.SaveLibraryCrops([]entities.LibraryCrop{{
		ID: "lc1", CropID: "tomato", Names: map[string]string{"en": "Tomato"},
		DaysToMaturity: 80, DefaultCareTemplateID: "tpl-pest-check", Version: 4,
	}})
	e := fixedEngine(r, today)

	crop, err := e.CreateCrop(NewCropInput{
		OwnerID: "u1", AreaID: "a1", LibraryCropID: "lc1",
		Name: "Balcony tomato", StartDate: today,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, crop.AppliedTemplateVersion)
	assert.Equal(t, 80, crop.DaysToMaturity)

	occs := r.Occurrences()
	require.Len(t, occs, 3)
	seeded := occs[2]
	assert.Equal(t, crop.ID, seeded.CropInstanceID)
	// pest-check template: interval 7 days
	assert.Equal(t, "2026-08-31", seeded.DueDate)
	assert.Equal(t, entities.StatusPlanned, seeded.StatusID)
}

func TestCreateCropStatusDerivation(t *testing.T) {
	cases := []struct {
		start, want string
	}{
		{"2026-08-10", entities.StatusOverdue}, // due long past
		{"2026-08-17", entities.StatusDue},     // start+7 == today
		{"2026-08-20", entities.StatusPlanned}, // due in the future
	}
	for _, tc := range cases {
		r := fixtureRepo(t)
		r.SaveLibraryCrops([]entities.LibraryCrop{{ID: "lc1", CropID: "basil", DefaultCareTemplateID: "tpl-pest-check"}})
		e := fixedEngine(r, today)

		_, err := e.CreateCrop(NewCropInput{OwnerID: "u1", AreaID: "a1", LibraryCropID: "lc1", Name: "Basil", StartDate: tc.start})
		require.NoError(t, err)
		occs := r.Occurrences()
		assert.Equal(t, tc.want, occs[len(occs)-1].StatusID, "start %s", tc.start)
	}
}

func TestCreateCropIntervalOverride(t *testing.T) {
	r := fixtureRepo(t)
	r.SaveLibraryCrops([]entities.LibraryCrop{{ID: "lc1", CropID: "mint", DefaultCareTemplateID: "tpl-watering"}})
	e := fixedEngine(r, today)

	_, err := e.CreateCrop(NewCropInput{
		OwnerID: "u1", AreaID: "a1", LibraryCropID: "lc1", Name: "Mint",
		StartDate: today, Overrides: map[string]any{"intervalDays": "10"},
	})
	require.NoError(t, err)
	occs := r.Occurrences()
	assert.Equal(t, "2026-09-03", occs[len(occs)-1].DueDate)
}

func TestCreateCropValidation(t *testing.T) {
	r := fixtureRepo(t)
	e := fixedEngine(r, today)

	_, err := e.CreateCrop(NewCropInput{OwnerID: "u1", AreaID: "a1", Name: "  ", StartDate: today})
	require.ErrorIs(t, err, record.ErrInvalidInput)

	_, err = e.CreateCrop(NewCropInput{OwnerID: "u1", AreaID: "a1", Name: "Kale", StartDate: "24/08/2026"})
	require.ErrorIs(t, err, record.ErrInvalidInput)

	_, err = e.CreateCrop(NewCropInput{OwnerID: "u1", AreaID: "ghost", Name: "Kale", StartDate: today})
	require.ErrorIs(t, err, record.ErrNotFound)

	assert.Len(t, r.Crops(), 1, "no partial writes on rejected creation")
}

func TestCreateCropWithoutLibraryCrop(t *testing.T) {
	r := fixtureRepo(t)
	e := fixedEngine(r, today)

	crop, err := e.CreateCrop(NewCropInput{OwnerID: "u1", AreaID: "a1", Name: "Volunteer squash", StartDate: today})
	require.NoError(t, err)
	assert.Zero(t, crop.AppliedTemplateVersion)
	assert.Len(t, r.Occurrences(), 2, "no seed occurrence without a template")
}

func TestCreateFieldAndArea(t *testing.T) {
	r := record.New(store.NewMemory(), "test")
	e := fixedEngine(r, today)

	_, err := e.CreateField(NewFieldInput{OwnerID: "u1", Name: " "})
	require.ErrorIs(t, err, record.ErrInvalidInput)

	f, err := e.CreateField(NewFieldInput{OwnerID: "u1", Name: "East field", Size: 2, SizeUnit: "rai"})
	require.NoError(t, err)

	_, err = e.CreateArea(NewAreaInput{OwnerID: "u1", FieldID: "ghost", Name: "Bed"})
	require.ErrorIs(t, err, record.ErrNotFound)

	a, err := e.CreateArea(NewAreaInput{OwnerID: "u1", FieldID: f.ID, Name: "Bed 1", TypeID: "bed"})
	require.NoError(t, err)
	assert.Equal(t, f.ID, a.FieldID)
	assert.Len(t, r.Areas(), 1)
}
