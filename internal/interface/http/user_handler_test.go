package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soraho/account-api/internal/application"
	"github.com/soraho/account-api/internal/domain/entity"
	"github.com/soraho/account-api/internal/infrastructure/token"
	handlers "github.com/soraho/account-api/internal/interface/http"
	"github.com/soraho/account-api/pkg/validation"
)

func newUserHandler(userRepo *fakeUserRepo, authRepo *fakeAuthRepo, tokens *token.Issuer) *handlers.UserHandler {
	svc := application.NewUserService(userRepo, authRepo, stubHasher{}, quietLogger())
	return handlers.NewUserHandler(svc, tokens, quietLogger())
}

func newTestIssuer() *token.Issuer {
	return token.NewIssuer("handler-test-signing-key", "account-api-test", "account-api-test-clients")
}

func TestUserHandlerRegister(t *testing.T) {
	validation.Init()

	newEngine := func(userRepo *fakeUserRepo, authRepo *fakeAuthRepo) *gin.Engine {
		engine := gin.New()
		engine.POST("/users/register", newUserHandler(userRepo, authRepo, newTestIssuer()).Register)
		return engine
	}

	validBody := gin.H{
		"name":       "Taro Yamada",
		"sign_in_id": "user@example.com",
		"password":   "secret-password",
	}

	t.Run("registers a valid user", func(t *testing.T) {
		engine := newEngine(&fakeUserRepo{createOK: true}, &fakeAuthRepo{})

		rec, env := postJSON(t, engine, "/users/register", validBody)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
	})

	t.Run("reports every invalid field at once", func(t *testing.T) {
		engine := newEngine(&fakeUserRepo{createOK: true}, &fakeAuthRepo{})

		rec, env := postJSON(t, engine, "/users/register", gin.H{
			"name":       "   ",
			"sign_in_id": "short",
			"password":   "tiny",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, env.Success)
		assert.Equal(t, false, env.Error["user_name_ok"])
		assert.Equal(t, false, env.Error["sign_in_id_ok"])
		assert.Equal(t, false, env.Error["raw_password_ok"])
	})

	t.Run("flags only the identifier on a duplicate", func(t *testing.T) {
		name, ok := entity.NewUserName("Existing User")
		require.True(t, ok)
		existing := entity.NewUser(name)
		authRepo := &fakeAuthRepo{
			userID: existing.ID,
			stored: entity.StoredPasswordFromString("hashed:whatever-pass"),
			found:  true,
		}
		engine := newEngine(&fakeUserRepo{createOK: true}, authRepo)

		rec, env := postJSON(t, engine, "/users/register", validBody)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, true, env.Error["user_name_ok"])
		assert.Equal(t, false, env.Error["sign_in_id_ok"])
		assert.Equal(t, true, env.Error["raw_password_ok"])
	})

	t.Run("answers 500 when the store rejects the new rows", func(t *testing.T) {
		engine := newEngine(&fakeUserRepo{createOK: false}, &fakeAuthRepo{})

		rec, env := postJSON(t, engine, "/users/register", validBody)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.False(t, env.Success)
	})

	t.Run("rejects a payload missing required fields", func(t *testing.T) {
		engine := newEngine(&fakeUserRepo{createOK: true}, &fakeAuthRepo{})

		rec, env := postJSON(t, engine, "/users/register", gin.H{"name": "Taro Yamada"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, env.Error, "sign_in_id")
		assert.Contains(t, env.Error, "password")
	})
}

func TestUserHandlerGet(t *testing.T) {
	name, ok := entity.NewUserName("Taro Yamada")
	require.True(t, ok)
	user := entity.NewUser(name)

	issuer := newTestIssuer()

	newEngine := func(userRepo *fakeUserRepo) *gin.Engine {
		engine := gin.New()
		engine.GET("/users", newUserHandler(userRepo, &fakeAuthRepo{}, issuer).Get)
		return engine
	}

	get := func(t *testing.T, engine *gin.Engine, authorization string) (*httptest.ResponseRecorder, envelope) {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		var env envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		return rec, env
	}

	t.Run("returns the profile of the token subject", func(t *testing.T) {
		accessToken, err := issuer.Issue(user.ID)
		require.NoError(t, err)
		engine := newEngine(&fakeUserRepo{user: user, userFound: true})

		rec, env := get(t, engine, "Bearer "+accessToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
		assert.Equal(t, "Taro Yamada", env.Data["name"])
	})

	t.Run("answers 401 without a bearer token", func(t *testing.T) {
		engine := newEngine(&fakeUserRepo{user: user, userFound: true})

		rec, env := get(t, engine, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, env.Success)
	})

	t.Run("answers 401 for a token without a usable subject", func(t *testing.T) {
		engine := newEngine(&fakeUserRepo{user: user, userFound: true})

		rec, env := get(t, engine, "Bearer not-a-token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, env.Success)
	})

	t.Run("answers 500 when the subject row is gone", func(t *testing.T) {
		accessToken, err := issuer.Issue(entity.NewUserID())
		require.NoError(t, err)
		engine := newEngine(&fakeUserRepo{})

		rec, env := get(t, engine, "Bearer "+accessToken)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.False(t, env.Success)
	})
}
