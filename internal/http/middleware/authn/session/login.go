package session

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/port"
	"github.com/praxishq/praxis/internal/metrics"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	payload.Email = strings.TrimSpace(strings.ToLower(payload.Email))

	// The response is identical whatever the failure, an unknown email must
	// not be distinguishable from a wrong password.
	unauthorized := func() {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	}

	user, err := h.userStore.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		if !errors.Is(err, port.ErrNotFound) {
			slog.ErrorContext(ctx, "could not find user", slogx.Error(err))
		}

		unauthorized()
		return
	}

	hash, err := h.userStore.GetPasswordHash(ctx, user.ID())
	if err != nil {
		slog.ErrorContext(ctx, "could not fetch password hash", slogx.Error(err))
		unauthorized()
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(payload.Password)); err != nil {
		unauthorized()
		return
	}

	if err := h.storeSessionUser(w, r, user.ID()); err != nil {
		slog.ErrorContext(ctx, "could not store session user", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	metrics.TotalLogins.Inc()

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toUserResponse(user)); err != nil {
		slog.ErrorContext(ctx, "could not encode response", slogx.Error(err))
	}
}
