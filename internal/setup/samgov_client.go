package setup

import (
	"context"

	"github.com/praxishq/praxis/internal/adapter/samgov"
	"github.com/praxishq/praxis/internal/config"
	"github.com/praxishq/praxis/internal/core/port"
)

var getOpportunitySearcherFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.OpportunitySearcher, error) {
	client := samgov.New(
		samgov.WithBaseURL(conf.SAMGov.BaseURL),
		samgov.WithAPIKey(conf.SAMGov.APIKey),
	)

	return client, nil
})
