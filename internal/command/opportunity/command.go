package opportunity

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/command/common"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "opportunity",
		Usage: "Search government contracting opportunities",
		Subcommands: []*cli.Command{
			searchCommand(),
		},
	}
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search upstream opportunities by keyword",
		ArgsUsage: "KEYWORD...",
		Flags:     common.WithCommonFlags(),
		Action: func(ctx *cli.Context) error {
			apiClient, err := common.GetClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			keyword := strings.Join(ctx.Args().Slice(), " ")

			result, err := apiClient.SearchOpportunities(ctx.Context, keyword)
			if err != nil {
				return errors.WithStack(err)
			}

			if result.NeedsCredential {
				fmt.Fprintln(os.Stderr, "no upstream credential configured on the server, searches are disabled")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

			fmt.Fprintln(w, "SOLICITATION\tTITLE\tAGENCY\tDEADLINE")
			for _, o := range result.Opportunities {
				deadline := ""
				if o.ResponseDeadline != nil {
					deadline = o.ResponseDeadline.Format("2006-01-02")
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", o.SolicitationNumber, o.Title, o.Agency, deadline)
			}

			if err := w.Flush(); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
