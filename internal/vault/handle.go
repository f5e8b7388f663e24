package vault

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// CurrentFormatVersion is the newest vault format this build can produce.
// A handle loaded with a lower version has pending migrations.
const CurrentFormatVersion = 3

// Item is one stored credential. Items are soft-deleted: DeletedAt marks the
// item as trashed while keeping it around for cross-device deletion
// propagation until pruning removes it for good.
type Item struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Username  string     `json:"username"`
	Password  string     `json:"password"`
	URL       string     `json:"url,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Deleted reports whether the item sits in the trash.
func (i Item) Deleted() bool { return i.DeletedAt != nil }

// Handle is a decrypted, mutable in-memory vault. It is the unit cached by
// [HandleCache] and the input to merge and prune operations. A Handle is not
// safe for concurrent use; callers serialize access through the vault service.
type Handle struct {
	FormatVersion int             `json:"format_version"`
	Items         map[string]Item `json:"items"`
}

// NewHandle returns an empty vault at the current format version.
func NewHandle() *Handle {
	return &Handle{
		FormatVersion: CurrentFormatVersion,
		Items:         make(map[string]Item),
	}
}

// Load parses an exported (decrypted) vault blob into a Handle.
func Load(blob []byte) (*Handle, error) {
	var h Handle
	if err := json.Unmarshal(blob, &h); err != nil {
		return nil, fmt.Errorf("parse vault blob: %w", err)
	}
	if h.Items == nil {
		h.Items = make(map[string]Item)
	}
	return &h, nil
}

// Export serializes the handle to the portable blob form fed to encryption.
func (h *Handle) Export() ([]byte, error) {
	blob, err := json.Marshal(h)
	if err != nil {
		return nil, fmt.Errorf("export vault blob: %w", err)
	}
	return blob, nil
}

// HasPendingMigrations reports whether the handle was produced by an older
// format version and needs upgrading before new-format features are safe.
func (h *Handle) HasPendingMigrations() bool {
	return h.FormatVersion < CurrentFormatVersion
}

// Upsert inserts or replaces an item and stamps UpdatedAt with now.
func (h *Handle) Upsert(item Item, now time.Time) {
	if existing, ok := h.Items[item.ID]; ok {
		item.CreatedAt = existing.CreatedAt
	} else if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
	h.Items[item.ID] = item
}

// SoftDelete moves an item to the trash. Returns false if the item does not
// exist or is already trashed.
func (h *Handle) SoftDelete(id string, now time.Time) bool {
	item, ok := h.Items[id]
	if !ok || item.Deleted() {
		return false
	}
	item.DeletedAt = &now
	item.UpdatedAt = now
	h.Items[id] = item
	return true
}

// CredentialsCount returns the number of live (non-trashed) items.
func (h *Handle) CredentialsCount() int {
	n := 0
	for _, item := range h.Items {
		if !item.Deleted() {
			n++
		}
	}
	return n
}

// EmailAddresses collects the distinct usernames that look like email
// addresses across live items, sorted for stable upload payloads.
func (h *Handle) EmailAddresses() []string {
	seen := make(map[string]struct{})
	for _, item := range h.Items {
		if item.Deleted() {
			continue
		}
		addr := strings.ToLower(strings.TrimSpace(item.Username))
		if strings.Count(addr, "@") != 1 || strings.HasPrefix(addr, "@") || strings.HasSuffix(addr, "@") {
			continue
		}
		seen[addr] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for addr := range seen {
		out = append(out, addr)
	}
	sort.Strings(out)
	return out
}
