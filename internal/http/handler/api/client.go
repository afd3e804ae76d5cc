package api

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
	"github.com/praxishq/praxis/internal/core/port"
	httpCtx "github.com/praxishq/praxis/internal/http/context"
)

func (h *Handler) handleListClients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	clients, err := h.clientStore.ListClients(ctx, user.ID())
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, clients)
}

type createClientRequest struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Notes        string `json:"notes"`
	Status       string `json:"status"`
}

func (h *Handler) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	var payload createClientRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	if payload.Name == "" {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "name is required", Field: "name"})
		return
	}

	if payload.Status == "" {
		payload.Status = "active"
	}

	now := time.Now().UTC()

	client := &model.Client{
		ID:           model.NewClientID(),
		UserID:       user.ID(),
		Name:         payload.Name,
		Organization: payload.Organization,
		Email:        payload.Email,
		Phone:        payload.Phone,
		Notes:        payload.Notes,
		Status:       payload.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.clientStore.CreateClient(ctx, client); err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusCreated, client)
}

func (h *Handler) handleGetClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	clientID := model.ClientID(r.PathValue("clientID"))

	client, err := h.clientStore.GetClientByID(ctx, user.ID(), clientID)
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, client)
}

type updateClientRequest struct {
	Name         *string `json:"name"`
	Organization *string `json:"organization"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Notes        *string `json:"notes"`
	Status       *string `json:"status"`
}

func (h *Handler) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	clientID := model.ClientID(r.PathValue("clientID"))

	var payload updateClientRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	client, err := h.clientStore.UpdateClient(ctx, user.ID(), clientID, port.ClientUpdates{
		Name:         payload.Name,
		Organization: payload.Organization,
		Email:        payload.Email,
		Phone:        payload.Phone,
		Notes:        payload.Notes,
		Status:       payload.Status,
	})
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, client)
}

func (h *Handler) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	clientID := model.ClientID(r.PathValue("clientID"))

	if err := h.clientStore.DeleteClient(ctx, user.ID(), clientID); err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
