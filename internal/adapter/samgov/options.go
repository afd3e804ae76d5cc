package samgov

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

type Options struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
}

type OptionFunc func(opts *Options)

func WithBaseURL(baseURL string) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithAPIKey(apiKey string) OptionFunc {
	return func(opts *Options) {
		opts.APIKey = apiKey
	}
}

func WithHTTPClient(httpClient *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = httpClient
	}
}

func WithLimiter(limiter *rate.Limiter) OptionFunc {
	return func(opts *Options) {
		opts.Limiter = limiter
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		BaseURL: "https://api.sam.gov/opportunities/v2/search",
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		// The public SAM.gov quota is low, stay well under it.
		Limiter: rate.NewLimiter(rate.Every(time.Second), 5),
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}
