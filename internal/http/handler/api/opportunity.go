package api

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
	"github.com/praxishq/praxis/internal/core/port"
	httpCtx "github.com/praxishq/praxis/internal/http/context"
	"github.com/praxishq/praxis/internal/metrics"
)

type SearchOpportunitiesResponse struct {
	Opportunities []port.OpportunitySummary `json:"opportunities"`

	// NeedsCredential tells the caller that no upstream credential is
	// configured, as opposed to the search having failed.
	NeedsCredential bool `json:"needsCredential,omitempty"`
}

func (h *Handler) handleSearchOpportunities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := port.OpportunitySearchQuery{
		Keyword:    r.URL.Query().Get("keyword"),
		NoticeType: r.URL.Query().Get("noticeType"),
		Limit:      getQueryLimit(r.URL.Query(), 25),
	}

	metrics.TotalOpportunitySearches.Inc()

	summaries, err := h.opportunitySearcher.SearchOpportunities(ctx, query)
	if err != nil {
		if errors.Is(err, port.ErrMissingCredentials) {
			writeJSON(w, r, http.StatusOK, SearchOpportunitiesResponse{
				Opportunities:   []port.OpportunitySummary{},
				NeedsCredential: true,
			})
			return
		}

		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		return
	}

	writeJSON(w, r, http.StatusOK, SearchOpportunitiesResponse{Opportunities: summaries})
}

func (h *Handler) handleListOpportunities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	opportunities, err := h.opportunityStore.ListOpportunities(ctx, user.ID())
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, opportunities)
}

type saveOpportunityRequest struct {
	SolicitationNumber string     `json:"solicitationNumber"`
	Title              string     `json:"title"`
	Agency             string     `json:"agency"`
	NoticeType         string     `json:"noticeType"`
	SetAside           string     `json:"setAside"`
	ResponseDeadline   *time.Time `json:"responseDeadline"`
	Description        string     `json:"description"`
	Raw                string     `json:"raw"`
}

func (h *Handler) handleSaveOpportunity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	var payload saveOpportunityRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	if payload.Title == "" {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "title is required", Field: "title"})
		return
	}

	now := time.Now().UTC()

	opportunity := &model.Opportunity{
		ID:                 model.NewOpportunityID(),
		UserID:             user.ID(),
		SolicitationNumber: payload.SolicitationNumber,
		Title:              payload.Title,
		Agency:             payload.Agency,
		NoticeType:         payload.NoticeType,
		SetAside:           payload.SetAside,
		ResponseDeadline:   payload.ResponseDeadline,
		Description:        payload.Description,
		Raw:                payload.Raw,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := h.opportunityStore.SaveOpportunity(ctx, opportunity); err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusCreated, opportunity)
}

func (h *Handler) handleDeleteOpportunity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	opportunityID := model.OpportunityID(r.PathValue("opportunityID"))

	if err := h.opportunityStore.DeleteOpportunity(ctx, user.ID(), opportunityID); err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
