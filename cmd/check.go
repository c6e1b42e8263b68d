package cmd

import (
	"github.com/spf13/cobra"

	"github.com/carve-tools/carve/internal/controller"
	"github.com/carve-tools/carve/internal/domain"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check LIST",
		Short: "Parse a selection list without reading any input",
		Long: `Check parses a selection list exactly as the extraction flags do and
prints the half-open index ranges it produces, one row per range in list
order. Nothing else is read or written, which makes it a dry run for
scripts that assemble selection lists.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			selection, err := domain.ParseSelection(args[0])
			if err != nil {
				return err
			}

			controller.RenderRanges(cmd.OutOrStdout(), selection)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
