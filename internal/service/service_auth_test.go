package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/mock"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthService(ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(mockRepo, config.App{
		PasswordHashKey: "hash-secret",
		TokenSignKey:    "sign-secret",
		TokenIssuer:     "vault-server",
		TokenDuration:   time.Hour,
	}, logger.Nop())
	return svc, mockRepo
}

func TestAuthService_RegisterUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			// Stored credential is the keyed hash, not the client value.
			assert.Equal(t, utils.HashString("client-auth-hash", "hash-secret"), user.AuthHash)
			user.UserID = 42
			return user, nil
		})

	registered, err := svc.RegisterUser(ctx, models.User{
		Login:    "alice",
		AuthHash: "client-auth-hash",
		SrpSalt:  "salt",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), registered.UserID)
}

func TestAuthService_RegisterUser_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(ctrl)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_LoginTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(ctx, models.User{Login: "alice", AuthHash: "h", SrpSalt: "s"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(ctrl)
	ctx := context.Background()

	stored := models.User{
		UserID:   7,
		Login:    "alice",
		AuthHash: utils.HashString("client-auth-hash", "hash-secret"),
		SrpSalt:  "salt",
	}
	mockRepo.EXPECT().FindUserByLogin(ctx, "alice").Return(stored, nil)

	user, err := svc.Login(ctx, models.User{Login: "alice", AuthHash: "client-auth-hash"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestAuthService_Login_WrongCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(ctrl)
	ctx := context.Background()

	stored := models.User{
		Login:    "alice",
		AuthHash: utils.HashString("right-hash", "hash-secret"),
	}
	mockRepo.EXPECT().FindUserByLogin(ctx, "alice").Return(stored, nil)

	_, err := svc.Login(ctx, models.User{Login: "alice", AuthHash: "wrong-hash"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByLogin(ctx, "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.User{Login: "ghost", AuthHash: "h"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_Params_StripsCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByLogin(ctx, "alice").Return(models.User{
		UserID:   7,
		Login:    "alice",
		AuthHash: "stored-hash",
		SrpSalt:  "salt",
	}, nil)

	params, err := svc.Params(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", params.Login)
	assert.Equal(t, "salt", params.SrpSalt)
	assert.Empty(t, params.AuthHash)
	assert.Zero(t, params.UserID)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_WrongSignKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(ctrl)
	ctx := context.Background()

	foreign, err := utils.GenerateJWTToken("vault-server", 42, time.Hour, "other-secret")
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongIssuer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(ctrl)
	ctx := context.Background()

	foreign, err := utils.GenerateJWTToken("other-service", 42, time.Hour, "sign-secret")
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
