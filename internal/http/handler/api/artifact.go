package api

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
	"github.com/praxishq/praxis/internal/core/port"
	httpCtx "github.com/praxishq/praxis/internal/http/context"
)

type ArtifactRecordResponse struct {
	ID           model.ArtifactRecordID `json:"id"`
	UserID       model.UserID           `json:"userId"`
	ComponentID  model.ComponentID      `json:"componentId"`
	ArtifactType string                 `json:"artifactType"`
	Title        string                 `json:"title"`
	Content      string                 `json:"content"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

func toArtifactRecordResponse(record model.PersistedArtifactRecord) ArtifactRecordResponse {
	return ArtifactRecordResponse{
		ID:           record.ID(),
		UserID:       record.UserID(),
		ComponentID:  record.ComponentID(),
		ArtifactType: record.ArtifactType(),
		Title:        record.Title(),
		Content:      record.Content(),
		CreatedAt:    record.CreatedAt(),
		UpdatedAt:    record.UpdatedAt(),
	}
}

func (h *Handler) handleListArtifacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	records, err := h.progressManager.GetUserArtifacts(ctx, user.ID())
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	res := make([]ArtifactRecordResponse, 0, len(records))
	for _, record := range records {
		res = append(res, toArtifactRecordResponse(record))
	}

	writeJSON(w, r, http.StatusOK, res)
}

type updateArtifactRequest struct {
	ComponentID  model.ComponentID `json:"componentId"`
	ArtifactType string            `json:"artifactType"`
	Title        *string           `json:"title"`
	Content      *string           `json:"content"`
}

func (h *Handler) handleUpdateArtifact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	var payload updateArtifactRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	record, err := h.progressManager.UpdateArtifact(ctx, user.ID(), payload.ComponentID, payload.ArtifactType, port.ArtifactUpdates{
		Title:   payload.Title,
		Content: payload.Content,
	})
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, toArtifactRecordResponse(record))
}

func (h *Handler) handleDeleteArtifact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	artifactID := model.ArtifactRecordID(r.PathValue("artifactID"))

	if err := h.progressManager.DeleteArtifact(ctx, user.ID(), artifactID); err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
