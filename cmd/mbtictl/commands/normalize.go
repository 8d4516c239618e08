package commands

import (
	"fmt"

	"github.com/dalemusser/mbticards/internal/app/system/typefilter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newNormalizeCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize RAW",
		Short: "Print the canonical form of a filter",
		Long: `Print the canonical form of a filter string.

Letters are upper-cased and put in I E S N F T P J order, duplicates
collapse, unknown characters are dropped, and a letter whose opposite is
also present is removed together with it. A note goes to stderr when
the result differs from the input beyond letter case.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := args[0]
			canon := typefilter.Normalize(raw)
			g.log.Debug("normalized filter", zap.String("raw", raw), zap.String("canonical", canon))

			if typefilter.Adjusted(raw) {
				fmt.Fprintln(cmd.ErrOrStderr(), pterm.Yellow("filter adjusted: "+raw+" -> "+canon))
			}
			fmt.Fprintln(cmd.OutOrStdout(), canon)
			return nil
		},
	}
}
