package setup

import (
	"context"

	gormAdapter "github.com/praxishq/praxis/internal/adapter/gorm"
	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/config"
)

var getGormStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*gormAdapter.Store, error) {
	db, err := getGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return gormAdapter.NewStore(db), nil
})
