package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

type ProgressRecord struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	ComponentID string     `json:"componentId"`
	Stage       string     `json:"stage"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Notes       string     `json:"notes"`
}

type ComponentProgress struct {
	ComponentID     string  `json:"componentId"`
	CompletedStages int     `json:"completedStages"`
	TotalStages     int     `json:"totalStages"`
	Percentage      float64 `json:"percentage"`
}

type ProgressSummary struct {
	UserID     string              `json:"userId"`
	Components []ComponentProgress `json:"components"`
	Overall    float64             `json:"overall"`
}

func (c *Client) ListProgress(ctx context.Context) ([]ProgressRecord, error) {
	records := []ProgressRecord{}
	if err := c.jsonRequest(ctx, http.MethodGet, "/progress", nil, nil, &records); err != nil {
		return nil, errors.WithStack(err)
	}

	return records, nil
}

type UpdateProgressParams struct {
	ComponentID string  `json:"componentId"`
	Stage       string  `json:"stage"`
	Completed   *bool   `json:"completed,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

func (c *Client) UpdateProgress(ctx context.Context, params UpdateProgressParams) (*ProgressRecord, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")

	record := &ProgressRecord{}
	if err := c.jsonRequest(ctx, http.MethodPut, "/progress", header, bytes.NewReader(body), record); err != nil {
		return nil, errors.WithStack(err)
	}

	return record, nil
}

func (c *Client) ProgressSummary(ctx context.Context) (*ProgressSummary, error) {
	summary := &ProgressSummary{}
	if err := c.jsonRequest(ctx, http.MethodGet, "/progress/summary", nil, nil, summary); err != nil {
		return nil, errors.WithStack(err)
	}

	return summary, nil
}
