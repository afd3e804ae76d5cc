package api

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
	"github.com/praxishq/praxis/internal/core/port"
	httpCtx "github.com/praxishq/praxis/internal/http/context"
)

type ProgressRecordResponse struct {
	ID          model.ProgressRecordID `json:"id"`
	UserID      model.UserID           `json:"userId"`
	ComponentID model.ComponentID      `json:"componentId"`
	Stage       model.Stage            `json:"stage"`
	Completed   bool                   `json:"completed"`
	CompletedAt *time.Time             `json:"completedAt,omitempty"`
	Notes       string                 `json:"notes"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

func toProgressRecordResponse(record model.PersistedProgressRecord) ProgressRecordResponse {
	return ProgressRecordResponse{
		ID:          record.ID(),
		UserID:      record.UserID(),
		ComponentID: record.ComponentID(),
		Stage:       record.Stage(),
		Completed:   record.Completed(),
		CompletedAt: record.CompletedAt(),
		Notes:       record.Notes(),
		CreatedAt:   record.CreatedAt(),
		UpdatedAt:   record.UpdatedAt(),
	}
}

func (h *Handler) handleListProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	records, err := h.progressManager.GetUserProgress(ctx, user.ID())
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	res := make([]ProgressRecordResponse, 0, len(records))
	for _, record := range records {
		res = append(res, toProgressRecordResponse(record))
	}

	writeJSON(w, r, http.StatusOK, res)
}

type updateProgressRequest struct {
	ComponentID model.ComponentID `json:"componentId"`
	Stage       model.Stage       `json:"stage"`
	Completed   *bool             `json:"completed"`
	Notes       *string           `json:"notes"`
}

func (h *Handler) handleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	var payload updateProgressRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	record, err := h.progressManager.UpdateProgress(ctx, user.ID(), payload.ComponentID, payload.Stage, port.ProgressUpdates{
		Completed: payload.Completed,
		Notes:     payload.Notes,
	})
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, toProgressRecordResponse(record))
}

func (h *Handler) handleProgressSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	summary, err := h.progressManager.Summary(ctx, user.ID())
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, summary)
}
