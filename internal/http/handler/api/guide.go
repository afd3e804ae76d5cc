package api

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
	httpCtx "github.com/praxishq/praxis/internal/http/context"
	"github.com/praxishq/praxis/internal/http/middleware/authz"
)

func (h *Handler) handleListGuides(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	guides, err := h.guideStore.ListGuides(ctx)
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	visible := make([]*model.Guide, 0, len(guides))
	for _, guide := range guides {
		if authz.CanViewGuide(user, guide) {
			visible = append(visible, guide)
		}
	}

	writeJSON(w, r, http.StatusOK, visible)
}

func (h *Handler) handleGetGuide(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	slug := r.PathValue("slug")

	guide, err := h.guideStore.GetGuideBySlug(ctx, slug)
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	// A restricted guide is indistinguishable from a missing one.
	if !authz.CanViewGuide(user, guide) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	writeJSON(w, r, http.StatusOK, guide)
}

type saveGuideRequest struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Roles []string `json:"roles"`
}

func (h *Handler) handleSaveGuide(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slug := r.PathValue("slug")

	var payload saveGuideRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	if payload.Title == "" {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "title is required", Field: "title"})
		return
	}

	now := time.Now().UTC()

	guide := &model.Guide{
		Slug:      slug,
		Title:     payload.Title,
		Body:      payload.Body,
		Roles:     payload.Roles,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.guideStore.SaveGuide(ctx, guide); err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, guide)
}
