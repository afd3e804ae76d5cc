package client

import (
	"net/http"
	"net/url"
)

// Client is a REST client for the dashboard API. Authentication is cookie
// based, call [Client.Login] first and reuse the client for every
// subsequent request.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func New(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
	}
}
