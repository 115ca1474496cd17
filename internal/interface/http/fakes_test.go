package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/soraho/account-api/internal/domain/entity"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type stubHasher struct{}

func (stubHasher) Generate(owner entity.User, raw entity.RawPassword) string {
	return "hashed:" + raw.String()
}

type fakeAuthRepo struct {
	userID entity.UserID
	stored entity.StoredPassword
	found  bool
}

func (f *fakeAuthRepo) TryFindAuthentication(_ context.Context, _ entity.SignInID) (entity.UserID, entity.StoredPassword, bool) {
	if !f.found {
		return entity.EmptyUserID, entity.EmptyStoredPassword, false
	}
	return f.userID, f.stored, true
}

type fakeUserRepo struct {
	user      entity.User
	userFound bool
	createOK  bool
}

func (f *fakeUserRepo) TryCreateUser(_ context.Context, _ entity.User, _ entity.SignInID, _ entity.HashedPassword) bool {
	return f.createOK
}

func (f *fakeUserRepo) TryFindUserByID(_ context.Context, id entity.UserID) (entity.User, bool) {
	if !f.userFound || id != f.user.ID {
		return entity.UnknownUser, false
	}
	return f.user, true
}

type fakeTokenIssuer struct {
	token string
	err   error
}

func (f *fakeTokenIssuer) Issue(_ entity.UserID) (string, error) {
	return f.token, f.err
}

// envelope mirrors the response wrapper with untyped payload fields so
// tests can reach into data and error without fixing a schema.
type envelope struct {
	Status  int            `json:"status"`
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
	Error   map[string]any `json:"error"`
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}
