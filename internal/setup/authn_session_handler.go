package setup

import (
	"context"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/config"
	"github.com/praxishq/praxis/internal/http/middleware/authn/session"
)

var getAuthnHandlerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*session.Handler, error) {
	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure session store from config")
	}

	userStore, err := getUserStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return session.NewHandler(sessionStore, userStore), nil
})
