package vault

import "time"

// TrashRetention is how long soft-deleted items are kept before Prune
// removes them permanently.
const TrashRetention = 30 * 24 * time.Hour

// MergeStats summarizes what Merge did, for logging and diagnostics.
type MergeStats struct {
	LocalOnly  int // items present only in the local vault
	ServerOnly int // items present only in the server vault
	LocalWins  int // conflicting items resolved in favor of the local copy
	ServerWins int // conflicting items resolved in favor of the server copy
}

// Merge reconciles two divergent vaults into one. Resolution is
// last-write-wins per item by UpdatedAt; on a timestamp tie the server copy
// wins so that all clients converge on the same result. A deletion is just a
// write like any other, so a newer deletion beats an older edit and vice
// versa. The merged format version is the higher of the two inputs.
func Merge(local, server *Handle) (*Handle, MergeStats) {
	merged := NewHandle()
	merged.FormatVersion = local.FormatVersion
	if server.FormatVersion > merged.FormatVersion {
		merged.FormatVersion = server.FormatVersion
	}

	var stats MergeStats

	for id, localItem := range local.Items {
		serverItem, ok := server.Items[id]
		if !ok {
			merged.Items[id] = localItem
			stats.LocalOnly++
			continue
		}
		if localItem.UpdatedAt.After(serverItem.UpdatedAt) {
			merged.Items[id] = localItem
			stats.LocalWins++
		} else {
			merged.Items[id] = serverItem
			stats.ServerWins++
		}
	}

	for id, serverItem := range server.Items {
		if _, ok := local.Items[id]; !ok {
			merged.Items[id] = serverItem
			stats.ServerOnly++
		}
	}

	return merged, stats
}

// Prune permanently removes trashed items deleted before now-TrashRetention.
// Returns the number of items removed; the handle is modified in place.
func Prune(h *Handle, now time.Time) int {
	cutoff := now.Add(-TrashRetention)
	pruned := 0
	for id, item := range h.Items {
		if item.Deleted() && item.DeletedAt.Before(cutoff) {
			delete(h.Items, id)
			pruned++
		}
	}
	return pruned
}
