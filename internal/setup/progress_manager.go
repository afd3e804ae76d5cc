package setup

import (
	"context"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/config"
	"github.com/praxishq/praxis/internal/core/service"
)

var getProgressManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.ProgressManager, error) {
	store, err := getGormStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewProgressManager(store, store), nil
})
