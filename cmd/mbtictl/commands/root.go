// Package commands implements the mbtictl command tree.
package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// globalOptions carries state shared by every subcommand.
type globalOptions struct {
	verbose int
	log     *zap.Logger
}

// NewRootCmd builds the mbtictl command tree. Each call returns a fresh
// tree with its own flag state.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "mbtictl",
		Short: "mbtictl - MBTI flashcard deck in the terminal",
		Long: `mbtictl - MBTI flashcard deck in the terminal.

Prints the sixteen personality types with their cognitive-function
stacks, filtered and sorted the same way as the web deck.

Available commands:
  deck      - Print the deck
  rank      - Print sort ranks for types
  normalize - Print the canonical form of a filter
  version   - Show version information

Examples:
  mbtictl deck --filter IN --sort Ni      # Introverted intuitives, Ni users first
  mbtictl deck --filter INFJ,EST --hide   # Study mode: labels hidden
  mbtictl rank --sort Ni,Te INTJ INFJ     # Compare two types
  mbtictl normalize "ie,snf"              # Prints ",F"`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose == 0 {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return errors.Wrap(err, "initialize logger")
			}
			opts.log = l.Named("mbtictl")
			return nil
		},
	}

	root.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v", "Increase output verbosity (logs to stderr)")

	root.AddCommand(newDeckCmd(opts))
	root.AddCommand(newRankCmd(opts))
	root.AddCommand(newNormalizeCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}
