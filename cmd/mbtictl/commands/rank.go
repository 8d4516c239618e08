package commands

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/dalemusser/mbticards/internal/app/system/ranking"
	"github.com/dalemusser/mbticards/internal/domain/models"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rankOptions struct {
	sort   string
	format string
}

type rankRow struct {
	Type string `json:"type" yaml:"type"`
	Rank int    `json:"rank" yaml:"rank"`
}

func newRankCmd(g *globalOptions) *cobra.Command {
	o := &rankOptions{}
	cmd := &cobra.Command{
		Use:   "rank --sort FUNCS [TYPE...]",
		Short: "Print sort ranks for types",
		Long: `Print the rank each type receives for a sort priority.

With no TYPE arguments all sixteen types are printed, highest rank
first. Otherwise the given types are printed in argument order.
Unlike the deck, every --sort entry counts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(cmd, g, o, args)
		},
	}

	cmd.Flags().StringVarP(&o.sort, "sort", "s", "", "Sort priority, comma-separated function codes (e.g. Ni,Te)")
	cmd.Flags().StringVarP(&o.format, "format", "o", formatTable, "Output format: table, json, yaml")
	_ = cmd.MarkFlagRequired("sort")

	return cmd
}

func runRank(cmd *cobra.Command, g *globalOptions, o *rankOptions, args []string) error {
	if err := checkFormat(o.format); err != nil {
		return err
	}

	priority, err := models.ParseFunctionList(o.sort)
	if err != nil {
		return errors.Wrap(err, "parse --sort")
	}

	var rows []rankRow
	if len(args) == 0 {
		for _, e := range ranking.Ranked(priority) {
			rows = append(rows, rankRow{Type: e.Type.String(), Rank: e.Rank})
		}
	} else {
		types := make([]models.TypeCode, 0, len(args))
		for _, a := range args {
			t, err := models.ParseType(a)
			if err != nil {
				return err
			}
			types = append(types, t)
		}
		g.log.Debug("ranking selected types", zap.String("types", joinTypes(types)))
		for _, t := range types {
			r, err := ranking.RankOf(priority, t)
			if err != nil {
				return err
			}
			rows = append(rows, rankRow{Type: t.String(), Rank: r})
		}
	}

	w := cmd.OutOrStdout()
	if o.format != formatTable {
		return writeStructured(w, o.format, rows)
	}

	data := pterm.TableData{{"Type", "Rank"}}
	for _, r := range rows {
		data = append(data, []string{r.Type, strconv.Itoa(r.Rank)})
	}
	return writeTable(w, data)
}
