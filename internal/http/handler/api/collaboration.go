package api

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
	httpCtx "github.com/praxishq/praxis/internal/http/context"
)

type CollaborationResponse struct {
	ID             model.CollaborationID     `json:"id"`
	OwnerID        model.UserID              `json:"ownerId"`
	CollaboratorID model.UserID              `json:"collaboratorId"`
	ClientID       model.ClientID            `json:"clientId"`
	Status         model.CollaborationStatus `json:"status"`
	AcceptedAt     *time.Time                `json:"acceptedAt,omitempty"`
	CreatedAt      time.Time                 `json:"createdAt"`
	UpdatedAt      time.Time                 `json:"updatedAt"`
}

func toCollaborationResponse(collaboration model.PersistedCollaboration) CollaborationResponse {
	return CollaborationResponse{
		ID:             collaboration.ID(),
		OwnerID:        collaboration.OwnerID(),
		CollaboratorID: collaboration.CollaboratorID(),
		ClientID:       collaboration.ClientID(),
		Status:         collaboration.Status(),
		AcceptedAt:     collaboration.AcceptedAt(),
		CreatedAt:      collaboration.CreatedAt(),
		UpdatedAt:      collaboration.UpdatedAt(),
	}
}

func (h *Handler) handleListCollaborations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	collaborations, err := h.collaborationManager.ListForUser(ctx, user.ID())
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	res := make([]CollaborationResponse, 0, len(collaborations))
	for _, collaboration := range collaborations {
		res = append(res, toCollaborationResponse(collaboration))
	}

	writeJSON(w, r, http.StatusOK, res)
}

type createCollaborationRequest struct {
	CollaboratorEmail string         `json:"collaboratorEmail"`
	ClientID          model.ClientID `json:"clientId"`
}

func (h *Handler) handleCreateCollaboration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	var payload createCollaborationRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	collaboration, err := h.collaborationManager.Invite(ctx, user.ID(), payload.CollaboratorEmail, payload.ClientID)
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusCreated, toCollaborationResponse(collaboration))
}

type respondCollaborationRequest struct {
	Status model.CollaborationStatus `json:"status"`
}

func (h *Handler) handleRespondCollaboration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	collaborationID := model.CollaborationID(r.PathValue("collaborationID"))

	var payload respondCollaborationRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	if payload.Status != model.CollaborationStatusAccepted && payload.Status != model.CollaborationStatusDeclined {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{
			Error: "status must be accepted or declined",
			Field: "status",
		})
		return
	}

	collaboration, err := h.collaborationManager.Respond(ctx, user.ID(), collaborationID, payload.Status)
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, toCollaborationResponse(collaboration))
}

func (h *Handler) handleSharedProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	clientID := model.ClientID(r.PathValue("clientID"))

	shared, err := h.collaborationManager.SharedWorkflowProgress(ctx, user.ID(), clientID)
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, shared)
}
