package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/crypto"
	"github.com/MKhiriev/go-vault-sync/internal/mock"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/vault"
	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*clientAuthService,
	*mock.MockVaultStateRepository,
	*mock.MockVaultServerAdapter,
	store.SessionRepository,
) {
	t.Helper()

	mockRepo := mock.NewMockVaultStateRepository(ctrl)
	mockAdapter := mock.NewMockVaultServerAdapter(ctrl)
	session := store.NewSessionRepository()

	storages := &store.ClientStorages{
		VaultState: mockRepo,
		Session:    session,
	}

	svc := NewClientAuthService(storages, mockAdapter, crypto.NewKeyChainService(), vault.NewHandleCache()).(*clientAuthService)

	return svc, mockRepo, mockAdapter, session
}

func TestClientAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, session := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	var registered models.User
	mockAdapter.EXPECT().Register(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (string, error) {
			registered = user
			return "fresh-token", nil
		})
	mockRepo.EXPECT().SetSrpSalt(ctx, gomock.Any()).Return(nil)
	mockRepo.EXPECT().RecordMutation(ctx, gomock.Any()).Return(int64(1), nil)

	err := svc.Register(ctx, "alice", "correct horse battery staple")
	require.NoError(t, err)

	assert.Equal(t, "alice", registered.Login)
	assert.NotEmpty(t, registered.AuthHash)
	assert.NotEmpty(t, registered.SrpSalt)

	// The server never sees the encryption key itself.
	key, unlocked := session.EncryptionKey()
	require.True(t, unlocked)
	assert.NotEqual(t, base64.StdEncoding.EncodeToString(key), registered.AuthHash)

	token, loggedIn := session.Token()
	require.True(t, loggedIn)
	assert.Equal(t, "fresh-token", token)
}

func TestClientAuthService_Register_ServerRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter, session := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Register(ctx, gomock.Any()).
		Return("", fmt.Errorf("status: %w", adapter.ErrConflict))

	err := svc.Register(ctx, "alice", "password")
	assert.ErrorIs(t, err, ErrRegisterOnServer)

	_, loggedIn := session.Token()
	assert.False(t, loggedIn)
}

func TestClientAuthService_Login_DownloadsVault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, session := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	salt := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef"))

	mockAdapter.EXPECT().Params(ctx, "alice").Return(models.AuthParamsResponse{Login: "alice", SrpSalt: salt}, nil)
	mockAdapter.EXPECT().Login(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (string, error) {
			assert.Equal(t, "alice", user.Login)
			assert.NotEmpty(t, user.AuthHash)
			return "session-token", nil
		})
	mockRepo.EXPECT().SetSrpSalt(ctx, salt).Return(nil)
	mockAdapter.EXPECT().GetVault(ctx).Return(models.VaultGetResponse{
		Blob:                   "server-blob",
		CurrentRevisionNumber:  12,
		PrivateEmailDomainList: []string{"alias.example"},
	}, nil)
	mockRepo.EXPECT().StoreVault(ctx, "server-blob", int64(12)).Return(nil)
	mockRepo.EXPECT().SetEmailDomainLists(ctx, models.EmailDomainLists{
		Private: []string{"alias.example"},
	}).Return(nil)

	err := svc.Login(ctx, "alice", "master password")
	require.NoError(t, err)

	token, loggedIn := session.Token()
	require.True(t, loggedIn)
	assert.Equal(t, "session-token", token)
	_, unlocked := session.EncryptionKey()
	assert.True(t, unlocked)
}

func TestClientAuthService_Login_NoVaultOnServerProvisionsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	salt := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef"))

	mockAdapter.EXPECT().Params(ctx, "alice").Return(models.AuthParamsResponse{SrpSalt: salt}, nil)
	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return("session-token", nil)
	mockRepo.EXPECT().SetSrpSalt(ctx, salt).Return(nil)
	mockAdapter.EXPECT().GetVault(ctx).
		Return(models.VaultGetResponse{}, fmt.Errorf("GET /api/vault: %w", adapter.ErrNotFound))

	// The empty vault is recorded as a mutation so the first sync uploads it.
	mockRepo.EXPECT().RecordMutation(ctx, gomock.Any()).Return(int64(1), nil)

	err := svc.Login(ctx, "alice", "master password")
	require.NoError(t, err)
}

func TestClientAuthService_Login_WrongCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter, session := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	salt := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef"))

	mockAdapter.EXPECT().Params(ctx, "alice").Return(models.AuthParamsResponse{SrpSalt: salt}, nil)
	mockAdapter.EXPECT().Login(ctx, gomock.Any()).
		Return("", fmt.Errorf("status: %w", adapter.ErrUnauthorized))

	err := svc.Login(ctx, "alice", "wrong password")
	assert.ErrorIs(t, err, ErrLoginOnServer)

	_, loggedIn := session.Token()
	assert.False(t, loggedIn)
}

func TestClientAuthService_SamePasswordSameAuthHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	salt := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef"))

	var hashes []string
	mockAdapter.EXPECT().Params(ctx, "alice").Return(models.AuthParamsResponse{SrpSalt: salt}, nil).Times(2)
	mockAdapter.EXPECT().Login(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (string, error) {
			hashes = append(hashes, user.AuthHash)
			return "", fmt.Errorf("status: %w", adapter.ErrUnauthorized)
		}).Times(2)

	_ = svc.Login(ctx, "alice", "master password")
	_ = svc.Login(ctx, "alice", "master password")

	// Key derivation is deterministic for a fixed salt, so both attempts
	// present the same credential to the server.
	require.Len(t, hashes, 2)
	assert.Equal(t, hashes[0], hashes[1])
}

func TestClientAuthService_Logout_WipesLocalState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, session := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	session.SetToken("token")
	session.SetEncryptionKey(make([]byte, 32))
	svc.cache.Put("blob", handleWithItem("cred-1", time.Now()))

	mockAdapter.EXPECT().SetToken("")
	mockRepo.EXPECT().Clear(ctx).Return(nil)

	err := svc.Logout(ctx)
	require.NoError(t, err)

	_, loggedIn := session.Token()
	assert.False(t, loggedIn)
	_, unlocked := session.EncryptionKey()
	assert.False(t, unlocked)
	_, hit := svc.cache.Get("blob")
	assert.False(t, hit)
	assert.False(t, svc.CheckAuthStatus())
}

func TestClientAuthService_CheckAuthStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, session := newTestAuthSvc(t, ctrl)

	assert.False(t, svc.CheckAuthStatus())
	session.SetToken("token")
	assert.True(t, svc.CheckAuthStatus())
}
