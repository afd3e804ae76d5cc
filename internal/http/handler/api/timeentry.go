package api

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
	"github.com/praxishq/praxis/internal/core/port"
	httpCtx "github.com/praxishq/praxis/internal/http/context"
)

func (h *Handler) handleListTimeEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	entries, err := h.ledgerStore.ListTimeEntries(ctx, user.ID())
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, entries)
}

type createTimeEntryRequest struct {
	ClientID    *model.ClientID `json:"clientId"`
	Description string          `json:"description"`
	Hours       float64         `json:"hours"`
	EntryDate   *time.Time      `json:"entryDate"`
	Billable    bool            `json:"billable"`
}

func (h *Handler) handleCreateTimeEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	var payload createTimeEntryRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	if payload.Hours <= 0 {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "hours must be positive", Field: "hours"})
		return
	}

	now := time.Now().UTC()

	entryDate := now
	if payload.EntryDate != nil {
		entryDate = *payload.EntryDate
	}

	entry := &model.TimeEntry{
		ID:          model.NewTimeEntryID(),
		UserID:      user.ID(),
		ClientID:    payload.ClientID,
		Description: payload.Description,
		Hours:       payload.Hours,
		EntryDate:   entryDate,
		Billable:    payload.Billable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.ledgerStore.CreateTimeEntry(ctx, entry); err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusCreated, entry)
}

type updateTimeEntryRequest struct {
	ClientID    *model.ClientID `json:"clientId"`
	Description *string         `json:"description"`
	Hours       *float64        `json:"hours"`
	EntryDate   *time.Time      `json:"entryDate"`
	Billable    *bool           `json:"billable"`
}

func (h *Handler) handleUpdateTimeEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	timeEntryID := model.TimeEntryID(r.PathValue("timeEntryID"))

	var payload updateTimeEntryRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	if payload.Hours != nil && *payload.Hours <= 0 {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "hours must be positive", Field: "hours"})
		return
	}

	entry, err := h.ledgerStore.UpdateTimeEntry(ctx, user.ID(), timeEntryID, port.TimeEntryUpdates{
		ClientID:    payload.ClientID,
		Description: payload.Description,
		Hours:       payload.Hours,
		EntryDate:   payload.EntryDate,
		Billable:    payload.Billable,
	})
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, entry)
}

func (h *Handler) handleDeleteTimeEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	timeEntryID := model.TimeEntryID(r.PathValue("timeEntryID"))

	if err := h.ledgerStore.DeleteTimeEntry(ctx, user.ID(), timeEntryID); err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
