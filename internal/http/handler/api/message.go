package api

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
	"github.com/praxishq/praxis/internal/core/port"
	httpCtx "github.com/praxishq/praxis/internal/http/context"
)

func (h *Handler) handleListMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	messages, err := h.messageStore.ListUserMessages(ctx, user.ID())
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, messages)
}

type sendMessageRequest struct {
	RecipientEmail string `json:"recipientEmail"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	var payload sendMessageRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	if payload.Body == "" {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "body is required", Field: "body"})
		return
	}

	recipient, err := h.userStore.FindUserByEmail(ctx, payload.RecipientEmail)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "no user registered under this email", Field: "recipientEmail"})
			return
		}

		handleError(w, r, errors.WithStack(err))
		return
	}

	now := time.Now().UTC()

	message := &model.Message{
		ID:          model.NewMessageID(),
		SenderID:    user.ID(),
		RecipientID: recipient.ID(),
		Subject:     payload.Subject,
		Body:        payload.Body,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.messageStore.CreateMessage(ctx, message); err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusCreated, message)
}

func (h *Handler) handleMarkMessageRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	messageID := model.MessageID(r.PathValue("messageID"))

	if err := h.messageStore.MarkMessageRead(ctx, user.ID(), messageID); err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
