package session

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/praxishq/praxis/internal/core/model"
)

type userResponse struct {
	ID          model.UserID `json:"id"`
	Email       string       `json:"email"`
	DisplayName string       `json:"displayName"`
	Roles       []string     `json:"roles"`
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		ID:          user.ID(),
		Email:       user.Email(),
		DisplayName: user.DisplayName(),
		Roles:       user.Roles(),
	}
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.Authenticate(w, r)
	if err != nil {
		slog.ErrorContext(ctx, "could not authenticate user", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if user == nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toUserResponse(user)); err != nil {
		slog.ErrorContext(ctx, "could not encode response", slogx.Error(err))
	}
}
