package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/mock"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestRouter wires a full chi router over mocked services so tests
// exercise the real middleware chain.
func newTestRouter(ctrl *gomock.Controller) (http.Handler, *mock.MockAuthService, *mock.MockVaultService) {
	mockAuth := mock.NewMockAuthService(ctrl)
	mockVault := mock.NewMockVaultService(ctrl)

	h := NewHandler(&service.Services{
		AuthService:  mockAuth,
		VaultService: mockVault,
	}, logger.Nop())

	return h.Init(), mockAuth, mockVault
}

func TestHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockAuth, _ := newTestRouter(ctrl)

	mockAuth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, user models.User) (models.User, error) {
			assert.Equal(t, "alice", user.Login)
			user.UserID = 42
			return user, nil
		})
	mockAuth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).
		Return(models.Token{SignedString: "signed-jwt"}, nil)

	body := `{"login":"alice","auth_hash":"hash","srp_salt":"salt"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed-jwt", rec.Header().Get("Authorization"))
}

func TestHandler_Register_LoginTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockAuth, _ := newTestRouter(ctrl)

	mockAuth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrLoginAlreadyExists)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"login":"alice","auth_hash":"h"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_Register_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _ := newTestRouter(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockAuth, _ := newTestRouter(ctrl)

	mockAuth.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.User{UserID: 7, Login: "alice"}, nil)
	mockAuth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).
		Return(models.Token{SignedString: "signed-jwt"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"login":"alice","auth_hash":"h"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed-jwt", rec.Header().Get("Authorization"))
}

func TestHandler_Login_WrongCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockAuth, _ := newTestRouter(ctrl)

	mockAuth.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrWrongPassword)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"login":"alice","auth_hash":"h"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Login_UnknownUserSameAnswerAsWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockAuth, _ := newTestRouter(ctrl)

	mockAuth.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrNoUserWasFound)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"login":"ghost","auth_hash":"h"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Params(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockAuth, _ := newTestRouter(ctrl)

	mockAuth.EXPECT().Params(gomock.Any(), "alice").
		Return(models.User{Login: "alice", SrpSalt: "salt"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/params?login=alice", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"login":"alice","srp_salt":"salt"}`, rec.Body.String())
}

func TestHandler_Params_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockAuth, _ := newTestRouter(ctrl)

	mockAuth.EXPECT().Params(gomock.Any(), "ghost").
		Return(models.User{}, store.ErrNoUserWasFound)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/params?login=ghost", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
