package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"agamOrganics/domain"
	"agamOrganics/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Flash kinds.
const (
	FlashSuccess = "success"
	FlashWarning = "warning"
	FlashError   = "error"
)

// AjaxResponse is the body of proxied AJAX calls that do not pass the API reply through.
type AjaxResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type Backend interface {
	Do(ctx context.Context, method, path, token string, body any) (BackendResponse, error)
}

type Handler struct {
	backend  Backend
	sessions *SessionStore
}

func NewHandler(backend Backend, sessions *SessionStore) *Handler {
	return &Handler{
		backend:  backend,
		sessions: sessions,
	}
}

type page map[string]any

func (h *Handler) render(c echo.Context, name, title string, data page) error {
	if data == nil {
		data = page{}
	}
	data["Title"] = title
	data["LoggedIn"] = h.sessions.AccessToken(c) != ""
	data["Flashes"] = h.sessions.Flashes(c)

	return c.Render(http.StatusOK, name, data)
}

func (h *Handler) redirect(c echo.Context, kind, message, to string) error {
	h.sessions.AddFlash(c, kind, message)
	return c.Redirect(http.StatusFound, to)
}

// call forwards a request with the session's access token. On a 401 it trades the
// refresh token for a new pair once and retries.
func (h *Handler) call(c echo.Context, method, path string, body any) (BackendResponse, error) {
	ctx := c.Request().Context()
	token := h.sessions.AccessToken(c)

	resp, err := h.backend.Do(ctx, method, path, token, body)
	if err != nil || resp.Status != http.StatusUnauthorized || token == "" {
		return resp, err
	}

	refresh := h.sessions.RefreshToken(c)
	if refresh == "" {
		return resp, nil
	}

	refreshed, err := h.backend.Do(ctx, http.MethodPost, "/api/auth/refresh", refresh, nil)
	if err != nil || !refreshed.OK() {
		return resp, nil
	}

	var pair domain.TokenPair
	if err := refreshed.Decode(&pair); err != nil || pair.AccessToken == "" {
		return resp, nil
	}
	h.sessions.SetTokens(c, pair.AccessToken, pair.RefreshToken)

	return h.backend.Do(ctx, method, path, pair.AccessToken, body)
}

// fetch calls the API and decodes a successful reply into v.
func (h *Handler) fetch(c echo.Context, path string, v any) (BackendResponse, error) {
	resp, err := h.call(c, http.MethodGet, path, nil)
	if err != nil {
		return resp, err
	}
	if !resp.OK() {
		return resp, errors.New(resp.Message(http.StatusText(resp.Status)))
	}
	if err := resp.Decode(v); err != nil {
		logger.Error("Failed to decode backend response", "path", path, "error", err)
		return resp, err
	}
	return resp, nil
}

// RequireLogin sends anonymous visitors to the login page.
func (h *Handler) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if h.sessions.AccessToken(c) == "" {
			h.sessions.AddFlash(c, FlashWarning, "Please login to continue")
			return c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request().URL.RequestURI()))
		}
		return next(c)
	}
}

// RequireLoginAPI rejects anonymous AJAX calls.
func (h *Handler) RequireLoginAPI(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if h.sessions.AccessToken(c) == "" {
			return c.JSON(http.StatusUnauthorized, AjaxResponse{Message: "Please login to continue"})
		}
		return next(c)
	}
}

// safeNext only allows local redirect targets.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}

func productQuery(c echo.Context, defaults url.Values) string {
	q := url.Values{}
	for _, key := range []string{"page", "page_size", "category", "search", "sort_by", "order"} {
		if v := strings.TrimSpace(c.QueryParam(key)); v != "" {
			q.Set(key, v)
		} else if d := defaults.Get(key); d != "" {
			q.Set(key, d)
		}
	}
	return q.Encode()
}

func readBody(c echo.Context) ([]byte, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}
	return body, nil
}
