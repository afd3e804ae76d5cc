package authn

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
	httpCtx "github.com/praxishq/praxis/internal/http/context"
)

var (
	ErrSkipRequest = errors.New("skip request")
)

type Authenticator interface {
	Authenticate(w http.ResponseWriter, r *http.Request) (model.User, error)
}

func Middleware(onUnauthorized func(w http.ResponseWriter, r *http.Request), authenticators ...Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			for _, authenticator := range authenticators {
				user, err := authenticator.Authenticate(w, r)
				if err != nil {
					if errors.Is(err, ErrSkipRequest) {
						return
					}

					slog.ErrorContext(r.Context(), "could not authenticate user", slogx.Error(err))
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}

				if user == nil {
					continue
				}

				ctx := r.Context()
				ctx = httpCtx.SetUser(ctx, user)

				r = r.WithContext(ctx)

				next.ServeHTTP(w, r)
				return
			}

			onUnauthorized(w, r)
		}

		return fn
	}
}
