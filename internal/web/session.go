package web

import (
	"encoding/json"
	"net/http"

	"boxful/internal/domain"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	sessionName = "boxful_session"

	keyToken    = "token"
	keyUserName = "userName"
	keyDraft    = "orderDraft"
)

// SessionStore guarda en una cookie cifrada lo único que el portal
// conserva entre peticiones: el token del backend, el nombre a mostrar y
// el borrador del asistente de envíos.
type SessionStore struct {
	store  *sessions.CookieStore
	logger *zap.Logger
}

func NewSessionStore(secret string, logger *zap.Logger) *SessionStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0, // cookie de sesión, igual que el localStorage original
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionStore{store: store, logger: logger}
}

// Current lee la sesión de forma defensiva: cualquier cosa rara equivale
// a "no autenticado".
func (s *SessionStore) Current(r *http.Request) domain.Session {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		return domain.Session{}
	}
	token, _ := session.Values[keyToken].(string)
	name, _ := session.Values[keyUserName].(string)
	return domain.Session{Token: token, DisplayName: name}
}

func (s *SessionStore) SignIn(w http.ResponseWriter, r *http.Request, token, displayName string) error {
	session, _ := s.store.Get(r, sessionName)
	session.Values[keyToken] = token
	session.Values[keyUserName] = displayName
	delete(session.Values, keyDraft)
	return session.Save(r, w)
}

func (s *SessionStore) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.Get(r, sessionName)
	session.Values = make(map[any]any)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// Draft devuelve el borrador del asistente, o false si no hay ninguno.
func (s *SessionStore) Draft(r *http.Request) (*domain.OrderDraft, bool) {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		return nil, false
	}
	raw, ok := session.Values[keyDraft].(string)
	if !ok || raw == "" {
		return nil, false
	}
	var draft domain.OrderDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, false
	}
	return &draft, true
}

func (s *SessionStore) SaveDraft(w http.ResponseWriter, r *http.Request, draft *domain.OrderDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	session, _ := s.store.Get(r, sessionName)
	session.Values[keyDraft] = string(raw)
	return session.Save(r, w)
}

func (s *SessionStore) ClearDraft(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.Get(r, sessionName)
	delete(session.Values, keyDraft)
	return session.Save(r, w)
}

// Flash deja un aviso de una sola lectura (p. ej. "registro exitoso").
func (s *SessionStore) Flash(w http.ResponseWriter, r *http.Request, message string) {
	session, _ := s.store.Get(r, sessionName)
	session.AddFlash(message)
	if err := session.Save(r, w); err != nil {
		s.logger.Error("failed to save flash", zap.Error(err))
	}
}

func (s *SessionStore) PopFlash(w http.ResponseWriter, r *http.Request) string {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		return ""
	}
	flashes := session.Flashes()
	if len(flashes) == 0 {
		return ""
	}
	if err := session.Save(r, w); err != nil {
		s.logger.Error("failed to consume flash", zap.Error(err))
	}
	msg, _ := flashes[0].(string)
	return msg
}
