package api

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
	"github.com/praxishq/praxis/internal/core/port"
	httpCtx "github.com/praxishq/praxis/internal/http/context"
)

func (h *Handler) handleListActions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	actions, err := h.ledgerStore.ListActions(ctx, user.ID())
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, actions)
}

type createActionRequest struct {
	ClientID *model.ClientID `json:"clientId"`
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Amount   float64         `json:"amount"`
	Status   string          `json:"status"`
	DueDate  *time.Time      `json:"dueDate"`
}

func (h *Handler) handleCreateAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	var payload createActionRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	if payload.Title == "" {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "title is required", Field: "title"})
		return
	}

	if payload.Status == "" {
		payload.Status = "open"
	}

	now := time.Now().UTC()

	action := &model.Action{
		ID:        model.NewActionID(),
		UserID:    user.ID(),
		ClientID:  payload.ClientID,
		Title:     payload.Title,
		Category:  payload.Category,
		Amount:    payload.Amount,
		Status:    payload.Status,
		DueDate:   payload.DueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.ledgerStore.CreateAction(ctx, action); err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusCreated, action)
}

type updateActionRequest struct {
	ClientID    *model.ClientID `json:"clientId"`
	Title       *string         `json:"title"`
	Category    *string         `json:"category"`
	Amount      *float64        `json:"amount"`
	Status      *string         `json:"status"`
	DueDate     *time.Time      `json:"dueDate"`
	CompletedAt *time.Time      `json:"completedAt"`
}

func (h *Handler) handleUpdateAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	actionID := model.ActionID(r.PathValue("actionID"))

	var payload updateActionRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	action, err := h.ledgerStore.UpdateAction(ctx, user.ID(), actionID, port.ActionUpdates{
		ClientID:    payload.ClientID,
		Title:       payload.Title,
		Category:    payload.Category,
		Amount:      payload.Amount,
		Status:      payload.Status,
		DueDate:     payload.DueDate,
		CompletedAt: payload.CompletedAt,
	})
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, action)
}

func (h *Handler) handleDeleteAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	actionID := model.ActionID(r.PathValue("actionID"))

	if err := h.ledgerStore.DeleteAction(ctx, user.ID(), actionID); err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
