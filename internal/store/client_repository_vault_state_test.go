package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

func newTestVaultStateRepo(t *testing.T) VaultStateRepository {
	t.Helper()

	cfg := config.AgentLocal{Path: filepath.Join(t.TempDir(), "state.db")}
	db, err := NewConnectSQLite(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewVaultStateRepository(db, logger.Nop())
}

func TestVaultState_FreshDatabaseDefaults(t *testing.T) {
	repo := newTestVaultStateRepo(t)
	ctx := context.Background()

	state, err := repo.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.VaultState{}, state)

	blob, err := repo.EncryptedVault(ctx)
	require.NoError(t, err)
	assert.Empty(t, blob)
}

func TestRecordMutation_AtomicTriple(t *testing.T) {
	repo := newTestVaultStateRepo(t)
	ctx := context.Background()

	seq, err := repo.RecordMutation(ctx, "blob-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq)

	seq, err = repo.RecordMutation(ctx, "blob-2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), seq)

	state, err := repo.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), state.MutationSequence)
	assert.True(t, state.Dirty)

	blob, err := repo.EncryptedVault(ctx)
	require.NoError(t, err)
	assert.Equal(t, "blob-2", blob)
}

func TestTryCommitIfUnchanged_Accepted(t *testing.T) {
	repo := newTestVaultStateRepo(t)
	ctx := context.Background()

	_, err := repo.RecordMutation(ctx, "local-blob")
	require.NoError(t, err)

	seq, err := repo.CaptureSequence(ctx)
	require.NoError(t, err)

	outcome, err := repo.TryCommitIfUnchanged(ctx, seq, "merged-blob", 7, false)
	require.NoError(t, err)
	assert.True(t, outcome.Accepted)

	state, err := repo.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), state.ServerRevision)
	assert.False(t, state.Dirty)

	blob, err := repo.EncryptedVault(ctx)
	require.NoError(t, err)
	assert.Equal(t, "merged-blob", blob)
}

func TestTryCommitIfUnchanged_RejectedOnConcurrentMutation(t *testing.T) {
	repo := newTestVaultStateRepo(t)
	ctx := context.Background()

	seq, err := repo.CaptureSequence(ctx)
	require.NoError(t, err)

	// A mutation lands between capture and commit.
	_, err = repo.RecordMutation(ctx, "concurrent-edit")
	require.NoError(t, err)

	outcome, err := repo.TryCommitIfUnchanged(ctx, seq, "stale-merge", 7, false)
	require.NoError(t, err)
	assert.False(t, outcome.Accepted)
	assert.Equal(t, seq+1, outcome.CurrentSequence)

	// The concurrent edit survives untouched.
	blob, err := repo.EncryptedVault(ctx)
	require.NoError(t, err)
	assert.Equal(t, "concurrent-edit", blob)

	state, err := repo.State(ctx)
	require.NoError(t, err)
	assert.True(t, state.Dirty)
	assert.Equal(t, int64(0), state.ServerRevision)
}

func TestMarkClean_ClearsWhenSequenceUnchanged(t *testing.T) {
	repo := newTestVaultStateRepo(t)
	ctx := context.Background()

	seq, err := repo.RecordMutation(ctx, "blob")
	require.NoError(t, err)

	cleared, err := repo.MarkClean(ctx, seq, 6)
	require.NoError(t, err)
	assert.True(t, cleared)

	state, err := repo.State(ctx)
	require.NoError(t, err)
	assert.False(t, state.Dirty)
	assert.Equal(t, int64(6), state.ServerRevision)
}

func TestMarkClean_KeepsDirtyWhenNewerMutationExists(t *testing.T) {
	repo := newTestVaultStateRepo(t)
	ctx := context.Background()

	seq, err := repo.RecordMutation(ctx, "uploaded-blob")
	require.NoError(t, err)

	// A newer mutation lands while the upload was in flight.
	_, err = repo.RecordMutation(ctx, "newer-blob")
	require.NoError(t, err)

	cleared, err := repo.MarkClean(ctx, seq, 6)
	require.NoError(t, err)
	assert.False(t, cleared)

	state, err := repo.State(ctx)
	require.NoError(t, err)
	assert.True(t, state.Dirty)
	// The revision still advances: the upload did land on the server.
	assert.Equal(t, int64(6), state.ServerRevision)
}

func TestStoreVault_ProvisionsClean(t *testing.T) {
	repo := newTestVaultStateRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.StoreVault(ctx, "server-blob", 4))

	state, err := repo.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), state.ServerRevision)
	assert.False(t, state.Dirty)

	blob, err := repo.EncryptedVault(ctx)
	require.NoError(t, err)
	assert.Equal(t, "server-blob", blob)
}

func TestOfflineModeAndSrpSalt(t *testing.T) {
	repo := newTestVaultStateRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetOfflineMode(ctx, true))
	state, err := repo.State(ctx)
	require.NoError(t, err)
	assert.True(t, state.OfflineMode)

	require.NoError(t, repo.SetSrpSalt(ctx, "salt-v1"))
	salt, err := repo.SrpSalt(ctx)
	require.NoError(t, err)
	assert.Equal(t, "salt-v1", salt)
}

func TestEmailDomainLists_RoundTrip(t *testing.T) {
	repo := newTestVaultStateRepo(t)
	ctx := context.Background()

	lists := models.EmailDomainLists{
		Public:        []string{"mail.example.com"},
		Private:       []string{"corp.example.com"},
		HiddenPrivate: []string{"legacy.example.com"},
	}
	require.NoError(t, repo.SetEmailDomainLists(ctx, lists))

	got, err := repo.EmailDomainLists(ctx)
	require.NoError(t, err)
	assert.Equal(t, lists, got)
}

func TestClear_RemovesAllState(t *testing.T) {
	repo := newTestVaultStateRepo(t)
	ctx := context.Background()

	_, err := repo.RecordMutation(ctx, "blob")
	require.NoError(t, err)
	require.NoError(t, repo.SetSrpSalt(ctx, "salt"))

	require.NoError(t, repo.Clear(ctx))

	state, err := repo.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.VaultState{}, state)

	salt, err := repo.SrpSalt(ctx)
	require.NoError(t, err)
	assert.Empty(t, salt)
}
