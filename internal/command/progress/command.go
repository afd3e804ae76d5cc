package progress

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/command/common"
	"github.com/praxishq/praxis/pkg/client"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "progress",
		Usage: "Inspect and update workflow progress",
		Subcommands: []*cli.Command{
			summaryCommand(),
			setCommand(),
		},
	}
}

func summaryCommand() *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "Show the aggregate completion state of the program",
		Flags: common.WithCommonFlags(),
		Action: func(ctx *cli.Context) error {
			apiClient, err := common.GetClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			summary, err := apiClient.ProgressSummary(ctx.Context)
			if err != nil {
				return errors.WithStack(err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

			fmt.Fprintln(w, "COMPONENT\tCOMPLETED\tPERCENTAGE")
			for _, c := range summary.Components {
				fmt.Fprintf(w, "%s\t%d/%d\t%.0f%%\n", c.ComponentID, c.CompletedStages, c.TotalStages, c.Percentage)
			}
			fmt.Fprintf(w, "overall\t\t%.1f%%\n", summary.Overall)

			if err := w.Flush(); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}

func setCommand() *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Mark a workflow stage as completed or not",
		ArgsUsage: "COMPONENT STAGE",
		Flags: common.WithCommonFlags(
			&cli.BoolFlag{
				Name:  "completed",
				Value: true,
				Usage: "Completion state to record",
			},
			&cli.StringFlag{
				Name:  "notes",
				Usage: "Notes to attach to the stage",
			},
		),
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() != 2 {
				return errors.New("expected exactly two arguments: COMPONENT STAGE")
			}

			apiClient, err := common.GetClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			completed := ctx.Bool("completed")

			params := client.UpdateProgressParams{
				ComponentID: ctx.Args().Get(0),
				Stage:       ctx.Args().Get(1),
				Completed:   &completed,
			}

			if ctx.IsSet("notes") {
				notes := ctx.String("notes")
				params.Notes = &notes
			}

			record, err := apiClient.UpdateProgress(ctx.Context, params)
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Printf("%s/%s completed=%v\n", record.ComponentID, record.Stage, record.Completed)

			return nil
		},
	}
}
