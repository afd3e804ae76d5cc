package common

import (
	"net/url"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/pkg/client"
	"github.com/urfave/cli/v2"
)

const (
	paramServer   = "server"
	paramEmail    = "email"
	paramPassword = "password"
)

var (
	flagServer = &cli.StringFlag{
		Name:    paramServer,
		Aliases: []string{"s"},
		Value:   "http://localhost:3004",
		EnvVars: []string{"PRAXIS_CLI_SERVER"},
		Usage:   "Dashboard server base url",
	}
	flagEmail = &cli.StringFlag{
		Name:    paramEmail,
		EnvVars: []string{"PRAXIS_CLI_EMAIL"},
		Usage:   "Account email",
	}
	flagPassword = &cli.StringFlag{
		Name:    paramPassword,
		EnvVars: []string{"PRAXIS_CLI_PASSWORD"},
		Usage:   "Account password",
	}
)

func WithCommonFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagServer,
		flagEmail,
		flagPassword,
	}, flags...)
}

// GetClient builds an API client from the common flags and opens a session
// with the configured account.
func GetClient(ctx *cli.Context) (*client.Client, error) {
	rawServerURL := ctx.String(paramServer)

	serverURL, err := url.Parse(rawServerURL)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	apiClient := client.New(
		client.WithBaseURL(serverURL),
	)

	if _, err := apiClient.Login(ctx.Context, ctx.String(paramEmail), ctx.String(paramPassword)); err != nil {
		return nil, errors.Wrap(err, "could not open session")
	}

	return apiClient, nil
}
