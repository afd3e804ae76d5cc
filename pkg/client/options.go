package client

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"
)

type Options struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
}

type OptionFunc func(opts *Options)

func WithBaseURL(baseURL *url.URL) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = httpClient
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	// The jar carries the session cookie across requests. Construction only
	// fails on a broken PublicSuffixList, none is given.
	jar, _ := cookiejar.New(nil)

	opts := &Options{
		BaseURL: &url.URL{
			Scheme: "http",
			Host:   "localhost:3004",
		},
		HTTPClient: &http.Client{
			Timeout: time.Minute,
			Jar:     jar,
			Transport: &RateLimitTransport{
				Base:        http.DefaultTransport,
				MaxRetries:  10,
				DefaultWait: time.Second,
			},
		},
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}
