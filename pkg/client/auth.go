package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

type User struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	DisplayName string   `json:"displayName"`
	Roles       []string `json:"roles"`
}

// Login opens a session for the given account. The session cookie is kept in
// the client's jar and sent with every subsequent request.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body, err := json.Marshal(struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")

	user := &User{}
	if err := c.jsonRequest(ctx, http.MethodPost, "/auth/login", header, bytes.NewReader(body), user); err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

// Register creates a new account and opens a session for it.
func (c *Client) Register(ctx context.Context, email, displayName, password string) (*User, error) {
	body, err := json.Marshal(struct {
		Email       string `json:"email"`
		DisplayName string `json:"displayName"`
		Password    string `json:"password"`
	}{Email: email, DisplayName: displayName, Password: password})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")

	user := &User{}
	if err := c.jsonRequest(ctx, http.MethodPost, "/auth/register", header, bytes.NewReader(body), user); err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

// Me returns the account bound to the current session.
func (c *Client) Me(ctx context.Context) (*User, error) {
	user := &User{}
	if err := c.jsonRequest(ctx, http.MethodGet, "/auth/me", nil, nil, user); err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}
