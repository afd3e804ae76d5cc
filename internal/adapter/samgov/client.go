package samgov

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/port"
	"golang.org/x/time/rate"
)

const defaultLimit = 25

// Client is a thin REST client for the SAM.gov opportunity search API. One
// blocking request per search, no retries, failures surface to the caller.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func New(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)
	return &Client{
		baseURL:    opts.BaseURL,
		apiKey:     opts.APIKey,
		httpClient: opts.HTTPClient,
		limiter:    opts.Limiter,
	}
}

type searchResponse struct {
	TotalRecords      int               `json:"totalRecords"`
	OpportunitiesData []json.RawMessage `json:"opportunitiesData"`
}

type opportunityRecord struct {
	Title              string `json:"title"`
	SolicitationNumber string `json:"solicitationNumber"`
	FullParentPathName string `json:"fullParentPathName"`
	Type               string `json:"type"`
	TypeOfSetAside     string `json:"typeOfSetAsideDescription"`
	ResponseDeadLine   string `json:"responseDeadLine"`
	Description        string `json:"description"`
}

// SearchOpportunities implements port.OpportunitySearcher.
func (c *Client) SearchOpportunities(ctx context.Context, query port.OpportunitySearchQuery) ([]port.OpportunitySummary, error) {
	if c.apiKey == "" {
		return nil, errors.WithStack(port.ErrMissingCredentials)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.WithStack(err)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultLimit
	}

	// The upstream requires a posted date window, default to the last year.
	now := time.Now()

	values := u.Query()
	values.Set("api_key", c.apiKey)
	values.Set("limit", strconv.Itoa(limit))
	values.Set("postedFrom", now.AddDate(-1, 0, 0).Format("01/02/2006"))
	values.Set("postedTo", now.Format("01/02/2006"))

	if query.Keyword != "" {
		values.Set("title", query.Keyword)
	}

	if query.NoticeType != "" {
		values.Set("ptype", query.NoticeType)
	}

	u.RawQuery = values.Encode()

	slog.DebugContext(ctx, "searching upstream opportunities", slog.String("keyword", query.Keyword), slog.String("noticeType", query.NoticeType))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusBadRequest {
		return nil, errors.Errorf("unexpected response code %d (%s)", res.StatusCode, res.Status)
	}

	var payload searchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.WithStack(err)
	}

	summaries := make([]port.OpportunitySummary, 0, len(payload.OpportunitiesData))

	for _, raw := range payload.OpportunitiesData {
		var record opportunityRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, errors.WithStack(err)
		}

		summaries = append(summaries, port.OpportunitySummary{
			SolicitationNumber: record.SolicitationNumber,
			Title:              record.Title,
			Agency:             record.FullParentPathName,
			NoticeType:         record.Type,
			SetAside:           record.TypeOfSetAside,
			ResponseDeadline:   parseDeadline(record.ResponseDeadLine),
			Description:        record.Description,
			Raw:                string(raw),
		})
	}

	return summaries, nil
}

// parseDeadline tolerates the two timestamp shapes the upstream emits.
func parseDeadline(value string) *time.Time {
	if value == "" {
		return nil
	}

	for _, layout := range []string{"2006-01-02T15:04:05-07:00", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}

	return nil
}

var _ port.OpportunitySearcher = &Client{}
