package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

type OpportunitySummary struct {
	SolicitationNumber string     `json:"solicitationNumber"`
	Title              string     `json:"title"`
	Agency             string     `json:"agency"`
	NoticeType         string     `json:"noticeType"`
	SetAside           string     `json:"setAside"`
	ResponseDeadline   *time.Time `json:"responseDeadline,omitempty"`
	Description        string     `json:"description"`
}

type SearchOpportunitiesResult struct {
	Opportunities   []OpportunitySummary `json:"opportunities"`
	NeedsCredential bool                 `json:"needsCredential,omitempty"`
}

func (c *Client) SearchOpportunities(ctx context.Context, keyword string) (*SearchOpportunitiesResult, error) {
	query := url.Values{}
	query.Set("keyword", keyword)

	result := &SearchOpportunitiesResult{}
	if err := c.jsonRequest(ctx, http.MethodGet, "/opportunities/search?"+query.Encode(), nil, nil, result); err != nil {
		return nil, errors.WithStack(err)
	}

	return result, nil
}
