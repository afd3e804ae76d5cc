package session

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/praxishq/praxis/internal/core/port"
)

// Handler owns the cookie-session based authentication surface: account
// registration, login, logout and the current-user endpoint. It doubles as
// the request authenticator, see [Handler.Authenticate].
type Handler struct {
	mux          *http.ServeMux
	sessionStore sessions.Store
	sessionName  string
	userStore    port.UserStore
}

// ServeHTTP implements [http.Handler].
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(sessionStore sessions.Store, userStore port.UserStore, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)
	h := &Handler{
		mux:          http.NewServeMux(),
		sessionStore: sessionStore,
		sessionName:  opts.SessionName,
		userStore:    userStore,
	}

	h.mux.HandleFunc("POST /register", h.handleRegister)
	h.mux.HandleFunc("POST /login", h.handleLogin)
	h.mux.HandleFunc("POST /logout", h.handleLogout)
	h.mux.HandleFunc("GET /me", h.handleMe)

	return h
}

var _ http.Handler = &Handler{}
