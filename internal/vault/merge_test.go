package vault

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_DisjointItems(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	local := NewHandle()
	local.Upsert(Item{ID: "a", Name: "only local"}, now)

	server := NewHandle()
	server.Upsert(Item{ID: "b", Name: "only server"}, now)

	merged, stats := Merge(local, server)

	require.Len(t, merged.Items, 2)
	assert.Equal(t, "only local", merged.Items["a"].Name)
	assert.Equal(t, "only server", merged.Items["b"].Name)
	assert.Equal(t, MergeStats{LocalOnly: 1, ServerOnly: 1}, stats)
}

func TestMerge_LastWriteWins(t *testing.T) {
	older := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	local := NewHandle()
	local.Upsert(Item{ID: "a", Name: "local newer"}, newer)
	local.Upsert(Item{ID: "b", Name: "local older"}, older)

	server := NewHandle()
	server.Upsert(Item{ID: "a", Name: "server older"}, older)
	server.Upsert(Item{ID: "b", Name: "server newer"}, newer)

	merged, stats := Merge(local, server)

	assert.Equal(t, "local newer", merged.Items["a"].Name)
	assert.Equal(t, "server newer", merged.Items["b"].Name)
	assert.Equal(t, MergeStats{LocalWins: 1, ServerWins: 1}, stats)
}

func TestMerge_TieGoesToServer(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	local := NewHandle()
	local.Upsert(Item{ID: "a", Name: "local"}, now)

	server := NewHandle()
	server.Upsert(Item{ID: "a", Name: "server"}, now)

	merged, stats := Merge(local, server)

	assert.Equal(t, "server", merged.Items["a"].Name)
	assert.Equal(t, 1, stats.ServerWins)
}

func TestMerge_NewerDeletionBeatsOlderEdit(t *testing.T) {
	edited := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	deleted := edited.Add(time.Hour)

	local := NewHandle()
	local.Upsert(Item{ID: "a", Name: "edited locally"}, edited)

	server := NewHandle()
	server.Upsert(Item{ID: "a", Name: "x"}, edited.Add(-time.Hour))
	server.SoftDelete("a", deleted)

	merged, _ := Merge(local, server)

	require.Contains(t, merged.Items, "a")
	assert.True(t, merged.Items["a"].Deleted())
}

func TestMerge_NewerEditBeatsOlderDeletion(t *testing.T) {
	deleted := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	edited := deleted.Add(time.Hour)

	local := NewHandle()
	local.Upsert(Item{ID: "a", Name: "old"}, deleted.Add(-time.Hour))
	local.SoftDelete("a", deleted)

	server := NewHandle()
	server.Upsert(Item{ID: "a", Name: "revived on server"}, edited)

	merged, _ := Merge(local, server)

	require.Contains(t, merged.Items, "a")
	assert.False(t, merged.Items["a"].Deleted())
	assert.Equal(t, "revived on server", merged.Items["a"].Name)
}

func TestMerge_FormatVersionIsMax(t *testing.T) {
	local := NewHandle()
	local.FormatVersion = 2
	server := NewHandle()
	server.FormatVersion = 3

	merged, _ := Merge(local, server)
	assert.Equal(t, 3, merged.FormatVersion)

	merged, _ = Merge(server, local)
	assert.Equal(t, 3, merged.FormatVersion)
}

func TestPrune(t *testing.T) {
	now := time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)
	old := now.Add(-TrashRetention - time.Hour)
	recent := now.Add(-time.Hour)

	h := NewHandle()
	h.Upsert(Item{ID: "live"}, now)
	h.Upsert(Item{ID: "old-trash"}, old)
	h.SoftDelete("old-trash", old)
	h.Upsert(Item{ID: "recent-trash"}, recent)
	h.SoftDelete("recent-trash", recent)

	pruned := Prune(h, now)

	assert.Equal(t, 1, pruned)
	assert.NotContains(t, h.Items, "old-trash")
	assert.Contains(t, h.Items, "recent-trash")
	assert.Contains(t, h.Items, "live")
}

func TestPrune_NothingToPrune(t *testing.T) {
	now := time.Now()
	h := NewHandle()
	h.Upsert(Item{ID: "a"}, now)

	assert.Equal(t, 0, Prune(h, now))
	assert.Len(t, h.Items, 1)
}
