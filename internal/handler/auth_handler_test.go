package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcriv/campushub-api/internal/models"
	"github.com/marcriv/campushub-api/internal/service"
	"github.com/marcriv/campushub-api/internal/store"
	"github.com/marcriv/campushub-api/pkg/kvstore"
	"github.com/marcriv/campushub-api/pkg/response"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *store.Identity) {
	t.Helper()
	identity := store.NewIdentity(store.SeedUsers(), kvstore.NewMemory(), "test:", nil)
	return NewAuthHandler(service.NewAuthService(identity, nil, nil)), identity
}

func TestAuthHandlerLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		handler, _ := newAuthHandler(t)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body, _ := json.Marshal(models.LoginRequest{Username: "0112345678", Password: "teacher"})
		req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		handler.Login(c)
		require.Equal(t, http.StatusOK, w.Code)

		var envelope response.Envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Nil(t, envelope.Error)
	})

	t.Run("wrong password", func(t *testing.T) {
		handler, _ := newAuthHandler(t)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body, _ := json.Marshal(models.LoginRequest{Username: "0112345678", Password: "wrong"})
		req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		handler.Login(c)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		handler, _ := newAuthHandler(t)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte(`invalid`)))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		handler.Login(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandlerMe(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("without a session", func(t *testing.T) {
		handler, _ := newAuthHandler(t)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest(http.MethodGet, "/auth/me", nil)

		handler.Me(c)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("with a session", func(t *testing.T) {
		handler, identity := newAuthHandler(t)
		_, err := identity.Login(context.Background(), "0212345678", "student")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest(http.MethodGet, "/auth/me", nil)

		handler.Me(c)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Chitoge Kirisaki")
	})
}
