package setup

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/config"
	praxisHTTP "github.com/praxishq/praxis/internal/http"
	"github.com/praxishq/praxis/internal/http/middleware/authn"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*praxisHTTP.Server, error) {
	api, err := getAPIHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure api handler from config")
	}

	sessionHandler, err := getAuthnHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure authn handler from config")
	}

	unauthorized := func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	}

	authnMiddleware := authn.Middleware(unauthorized, sessionHandler)

	options := []praxisHTTP.OptionFunc{
		praxisHTTP.WithAddress(conf.HTTP.Address),
		praxisHTTP.WithBaseURL(conf.HTTP.BaseURL),
		praxisHTTP.WithAllowedOrigins(conf.HTTP.AllowedOrigins...),
		praxisHTTP.WithMount("/api/v1/auth/", sessionHandler),
		praxisHTTP.WithMount("/api/v1/", authnMiddleware(api)),
		praxisHTTP.WithMount("/metrics", promhttp.Handler()),
	}

	server := praxisHTTP.NewServer(options...)

	return server, nil
}
