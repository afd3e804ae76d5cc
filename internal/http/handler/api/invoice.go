package api

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
	"github.com/praxishq/praxis/internal/core/port"
	httpCtx "github.com/praxishq/praxis/internal/http/context"
)

func (h *Handler) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	invoices, err := h.ledgerStore.ListInvoices(ctx, user.ID())
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, invoices)
}

type createInvoiceRequest struct {
	ClientID  model.ClientID `json:"clientId"`
	Number    string         `json:"number"`
	Amount    float64        `json:"amount"`
	IssuedAt  *time.Time     `json:"issuedAt"`
	DueAt     *time.Time     `json:"dueAt"`
	LineItems string         `json:"lineItems"`
}

func (h *Handler) handleCreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	var payload createInvoiceRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	if payload.ClientID == "" {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "clientId is required", Field: "clientId"})
		return
	}

	// The invoice must target one of the user's own clients.
	if _, err := h.clientStore.GetClientByID(ctx, user.ID(), payload.ClientID); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "unknown client", Field: "clientId"})
			return
		}

		handleError(w, r, errors.WithStack(err))
		return
	}

	now := time.Now().UTC()

	issuedAt := now
	if payload.IssuedAt != nil {
		issuedAt = *payload.IssuedAt
	}

	invoice := &model.Invoice{
		ID:        model.NewInvoiceID(),
		UserID:    user.ID(),
		ClientID:  payload.ClientID,
		Number:    payload.Number,
		Amount:    payload.Amount,
		Status:    model.InvoiceStatusDraft,
		IssuedAt:  issuedAt,
		DueAt:     payload.DueAt,
		LineItems: payload.LineItems,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.ledgerStore.CreateInvoice(ctx, invoice); err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusCreated, invoice)
}

type updateInvoiceRequest struct {
	Number    *string              `json:"number"`
	Amount    *float64             `json:"amount"`
	Status    *model.InvoiceStatus `json:"status"`
	IssuedAt  *time.Time           `json:"issuedAt"`
	DueAt     *time.Time           `json:"dueAt"`
	LineItems *string              `json:"lineItems"`
}

func (h *Handler) handleUpdateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	invoiceID := model.InvoiceID(r.PathValue("invoiceID"))

	var payload updateInvoiceRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	if payload.Status != nil {
		switch *payload.Status {
		case model.InvoiceStatusDraft, model.InvoiceStatusSent, model.InvoiceStatusPaid:
		default:
			writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "unknown invoice status", Field: "status"})
			return
		}
	}

	invoice, err := h.ledgerStore.UpdateInvoice(ctx, user.ID(), invoiceID, port.InvoiceUpdates{
		Number:    payload.Number,
		Amount:    payload.Amount,
		Status:    payload.Status,
		IssuedAt:  payload.IssuedAt,
		DueAt:     payload.DueAt,
		LineItems: payload.LineItems,
	})
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, invoice)
}

func (h *Handler) handleDeleteInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	invoiceID := model.InvoiceID(r.PathValue("invoiceID"))

	if err := h.ledgerStore.DeleteInvoice(ctx, user.ID(), invoiceID); err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
