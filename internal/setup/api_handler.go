package setup

import (
	"context"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/config"
	"github.com/praxishq/praxis/internal/http/handler/api"
)

func getAPIHandlerFromConfig(ctx context.Context, conf *config.Config) (*api.Handler, error) {
	progressManager, err := getProgressManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	collaborationManager, err := getCollaborationManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	store, err := getGormStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	userStore, err := getUserStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	searcher, err := getOpportunitySearcherFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	handler := api.NewHandler(progressManager, collaborationManager, store, store, store, store, searcher, store, userStore)

	return handler, nil
}
