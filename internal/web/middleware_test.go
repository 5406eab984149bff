package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"boxful/internal/infrastructure/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequireSession(t *testing.T) {
	store := NewSessionStore("clave-de-prueba", zap.NewNop())
	handler := RequireSession(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("without session redirects to login", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("with session passes through", func(t *testing.T) {
		loginRec := httptest.NewRecorder()
		require.NoError(t, store.SignIn(loginRec, httptest.NewRequest(http.MethodPost, "/login", nil), "token-123", "Ana"))

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		for _, c := range loginRec.Result().Cookies() {
			req.AddCookie(c)
		}

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandleUnauthorized(t *testing.T) {
	store := NewSessionStore("clave-de-prueba", zap.NewNop())

	t.Run("backend 401 clears session and redirects", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)

		handled := HandleUnauthorized(store, rec, req, fmt.Errorf("listing: %w", api.ErrUnauthorized))

		assert.True(t, handled)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("401 on auth pages is left to the caller", func(t *testing.T) {
		for _, path := range []string{"/login", "/register"} {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, path, nil)

			handled := HandleUnauthorized(store, rec, req, api.ErrUnauthorized)

			assert.False(t, handled, path)
			assert.NotEqual(t, http.StatusSeeOther, rec.Code, path)
		}
	})

	t.Run("other errors are not handled", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)

		handled := HandleUnauthorized(store, rec, req, errors.New("timeout"))

		assert.False(t, handled)
	})
}
