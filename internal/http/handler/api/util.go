package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/port"
	"github.com/praxishq/praxis/internal/core/service"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := encoder.Encode(payload); err != nil {
		slog.ErrorContext(r.Context(), "could not encode response", slogx.Error(err))
	}
}

// handleError maps domain failures to their HTTP shape. Anything not
// explicitly mapped is a 500 and is logged with its stack.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *port.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{
			Error: validationErr.Reason,
			Field: validationErr.Field,
		})
		return
	}

	switch {
	case errors.Is(err, port.ErrNotFound):
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)

	case errors.Is(err, service.ErrNotCollaborator), errors.Is(err, service.ErrNoClientAccess):
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)

	case errors.Is(err, port.ErrEmailTaken):
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "email already taken", Field: "email"})

	default:
		slog.ErrorContext(r.Context(), "could not handle request", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, payload any) bool {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return false
	}

	return true
}

func getQueryLimit(query url.Values, defaultValue int) int {
	return getQueryInt(query, "limit", defaultValue)
}

func getQueryInt(query url.Values, name string, defaultValue int) int {
	raw := query.Get(name)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return defaultValue
	}

	return int(value)
}
