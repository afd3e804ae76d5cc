package port

import (
	"context"
	"errors"
	"time"
)

// ErrMissingCredentials signals that the caller has not configured access to
// the upstream opportunity service. Distinguishable from a request failure.
var ErrMissingCredentials = errors.New("missing upstream credentials")

type OpportunitySearchQuery struct {
	Keyword    string
	NoticeType string
	Limit      int
}

// OpportunitySummary is one upstream search hit, plus the raw upstream
// record passed through untouched.
type OpportunitySummary struct {
	SolicitationNumber string     `json:"solicitationNumber"`
	Title              string     `json:"title"`
	Agency             string     `json:"agency"`
	NoticeType         string     `json:"noticeType"`
	SetAside           string     `json:"setAside"`
	ResponseDeadline   *time.Time `json:"responseDeadline,omitempty"`
	Description        string     `json:"description"`
	Raw                string     `json:"raw,omitempty"`
}

type OpportunitySearcher interface {
	// SearchOpportunities performs a single blocking search against the
	// upstream service. Returns ErrMissingCredentials when no credential is
	// configured. No retries, failures surface immediately.
	SearchOpportunities(ctx context.Context, query OpportunitySearchQuery) ([]OpportunitySummary, error)
}
