package setup

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/config"
)

// createFromConfigOnce memoizes a config-driven constructor so the wired
// components share a single instance.
func createFromConfigOnce[T any](fn func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		once  sync.Once
		value T
		err   error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			value, err = fn(ctx, conf)
		})
		if err != nil {
			return value, errors.WithStack(err)
		}

		return value, nil
	}
}
