package setup

import (
	"context"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/config"
	"github.com/praxishq/praxis/internal/core/service"
)

var getCollaborationManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.CollaborationManager, error) {
	store, err := getGormStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	userStore, err := getUserStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewCollaborationManager(store, store, store, userStore), nil
})
