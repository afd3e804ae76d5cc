package session

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
	"github.com/praxishq/praxis/internal/core/port"
	"github.com/praxishq/praxis/internal/metrics"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

const minPasswordLength = 8

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload registerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	payload.Email = strings.TrimSpace(strings.ToLower(payload.Email))

	if payload.Email == "" || !strings.Contains(payload.Email, "@") {
		writeFieldError(w, "email", "a valid email is required")
		return
	}

	if len(payload.Password) < minPasswordLength {
		writeFieldError(w, "password", "password must be at least 8 characters")
		return
	}

	if payload.DisplayName == "" {
		payload.DisplayName = payload.Email
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.ErrorContext(ctx, "could not hash password", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	user, err := h.userStore.CreateUser(ctx, port.CreateUserParams{
		Email:        payload.Email,
		DisplayName:  payload.DisplayName,
		PasswordHash: string(hash),
		Roles:        []string{model.RoleUser},
	})
	if err != nil {
		if errors.Is(err, port.ErrEmailTaken) {
			writeFieldError(w, "email", "email already registered")
			return
		}

		slog.ErrorContext(ctx, "could not create user", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	metrics.TotalRegistrations.Inc()

	if err := h.storeSessionUser(w, r, user.ID()); err != nil {
		slog.ErrorContext(ctx, "could not store session user", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toUserResponse(user)); err != nil {
		slog.ErrorContext(ctx, "could not encode response", slogx.Error(err))
	}
}

func writeFieldError(w http.ResponseWriter, field, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)

	json.NewEncoder(w).Encode(map[string]string{
		"error": reason,
		"field": field,
	})
}
