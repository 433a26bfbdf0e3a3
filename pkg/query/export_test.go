package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropdiary/entities"
)

func repoWithPhotos(t *testing.T) *Engine {
	t.Helper()
	r := fixtureRepo(t)
	r.SavePhotos([]entities.Photo{
		{ID: "p1", OwnerID: "u1", StorageRef: "blob://p1", MimeType: "image/jpeg"},
		{ID: "p2", OwnerID: "u1", StorageRef: "blob://p2", MimeType: "image/jpeg"},
	})
	logs := r.Logs()
	logs[0].PhotoIDs = []string{"p1", "p2"}
	logs[1].PhotoIDs = []string{"p1", "ghost"}
	r.SaveLogs(logs)
	return fixedEngine(r)
}

func TestExportSummary(t *testing.T) {
	q := repoWithPhotos(t)

	s := q.Summarize(Filters{})
	assert.Equal(t, 3, s.LogCount)
	assert.Greater(t, s.EstimatedSizeKB, 0.0)
}

func TestExportFullDedupesPhotos(t *testing.T) {
	q := repoWithPhotos(t)

	p := q.Export(Filters{}, true)
	assert.Equal(t, 3, p.Metadata.LogCount)
	require.Len(t, p.Photos, 2, "p1 referenced twice, ghost dropped")
	ids := []string{p.Photos[0].ID, p.Photos[1].ID}
	assert.ElementsMatch(t, []string{"p1", "p2"}, ids)
}

func TestExportPhotosOnlyOnRequest(t *testing.T) {
	q := repoWithPhotos(t)
	p := q.Export(Filters{}, false)
	assert.Empty(t, p.Photos)
	assert.Len(t, p.Logs, 3)
}
