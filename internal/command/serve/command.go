package serve

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/config"
	"github.com/praxishq/praxis/internal/setup"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the dashboard server",
		Action: func(ctx *cli.Context) error {
			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse configuration")
			}

			server, err := setup.NewHTTPServerFromConfig(ctx.Context, conf)
			if err != nil {
				return errors.Wrap(err, "could not configure http server")
			}

			slog.InfoContext(ctx.Context, "starting server", slog.Any("address", conf.HTTP.Address))

			if err := server.Run(ctx.Context); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
