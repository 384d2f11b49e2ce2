package web

import (
	"encoding/gob"
	"net/http"

	"agamOrganics/pkg/logger"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	sessionName     = "agam_session"
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Kind    string
	Message string
}

func init() {
	gob.Register(Flash{})
}

type SessionStore struct {
	store *sessions.CookieStore
}

func NewSessionStore(secret string, secure bool) *SessionStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(86400 * 7)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	store.Options.SameSite = http.SameSiteLaxMode

	return &SessionStore{store: store}
}

func (s *SessionStore) get(c echo.Context) *sessions.Session {
	sess, err := s.store.Get(c.Request(), sessionName)
	if err != nil {
		// A cookie signed with an old secret decodes as a fresh session.
		logger.Debug("Discarding unreadable session", "error", err)
	}
	return sess
}

func (s *SessionStore) save(c echo.Context, sess *sessions.Session) {
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		logger.Error("Failed to save session", "error", err)
	}
}

func (s *SessionStore) AccessToken(c echo.Context) string {
	token, _ := s.get(c).Values[keyAccessToken].(string)
	return token
}

func (s *SessionStore) RefreshToken(c echo.Context) string {
	token, _ := s.get(c).Values[keyRefreshToken].(string)
	return token
}

func (s *SessionStore) SetTokens(c echo.Context, access, refresh string) {
	sess := s.get(c)
	sess.Values[keyAccessToken] = access
	sess.Values[keyRefreshToken] = refresh
	s.save(c, sess)
}

func (s *SessionStore) Clear(c echo.Context) {
	sess := s.get(c)
	delete(sess.Values, keyAccessToken)
	delete(sess.Values, keyRefreshToken)
	s.save(c, sess)
}

func (s *SessionStore) AddFlash(c echo.Context, kind, message string) {
	sess := s.get(c)
	sess.AddFlash(Flash{Kind: kind, Message: message})
	s.save(c, sess)
}

// Flashes pops the pending flash messages.
func (s *SessionStore) Flashes(c echo.Context) []Flash {
	sess := s.get(c)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	s.save(c, sess)

	flashes := make([]Flash, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	return flashes
}
