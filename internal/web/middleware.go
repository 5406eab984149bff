package web

import (
	"errors"
	"net/http"
	"time"

	"boxful/internal/infrastructure/api"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RequestLogger registra cada petición entrante con su estado y duración.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// RequireSession manda a /login a cualquier visitante sin token.
func RequireSession(sessions *SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.Current(r).LoggedIn() {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// HandleUnauthorized aplica la única política transversal de fallo del
// portal: un 401 del backend invalida la sesión y fuerza /login, salvo que
// ya estemos en una página de autenticación (evita el bucle de redirects).
// Devuelve true si el error quedó resuelto aquí.
func HandleUnauthorized(sessions *SessionStore, w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, api.ErrUnauthorized) {
		return false
	}
	if r.URL.Path == "/login" || r.URL.Path == "/register" {
		return false
	}
	if err := sessions.SignOut(w, r); err != nil {
		sessions.logger.Error("failed to clear session", zap.Error(err))
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
	return true
}
