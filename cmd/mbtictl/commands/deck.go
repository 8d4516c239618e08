package commands

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dalemusser/mbticards/internal/app/system/ranking"
	"github.com/dalemusser/mbticards/internal/app/system/typefilter"
	"github.com/dalemusser/mbticards/internal/app/system/viewstate"
	"github.com/dalemusser/mbticards/internal/domain/models"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// hiddenLabel stands in for a function label in study mode.
const hiddenLabel = "··"

type deckOptions struct {
	filter string
	sort   string
	hide   bool
	format string
}

// deckOutput mirrors the JSON served by the web deck's /api/deck.
type deckOutput struct {
	Filter string    `json:"filter" yaml:"filter"`
	Sort   []string  `json:"sort" yaml:"sort"`
	Types  []deckRow `json:"types" yaml:"types"`
}

type deckRow struct {
	Type      string   `json:"type" yaml:"type"`
	Rank      int      `json:"rank" yaml:"rank"`
	Functions []string `json:"functions,omitempty" yaml:"functions,omitempty"`
}

func newDeckCmd(g *globalOptions) *cobra.Command {
	o := &deckOptions{}
	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Print the deck",
		Long: `Print the visible types in deck order.

--filter takes letters every shown type must contain; commas separate
alternatives, and opposing letters (I/E, S/N, F/T, P/J) cancel out.
--sort takes function codes, the first dominating; entries past the
second are ignored (use "mbtictl rank" to rank by a longer list).
--hide prints the deck with the function labels masked for study.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeck(cmd, g, o)
		},
	}

	cmd.Flags().StringVarP(&o.filter, "filter", "f", "", "Type filter (e.g. IN or INFJ,EST)")
	cmd.Flags().StringVarP(&o.sort, "sort", "s", "", "Sort priority, up to two comma-separated function codes (e.g. Ni,Te); extra entries are ignored")
	cmd.Flags().BoolVar(&o.hide, "hide", false, "Hide function labels (study mode)")
	cmd.Flags().StringVarP(&o.format, "format", "o", formatTable, "Output format: table, json, yaml")

	return cmd
}

func runDeck(cmd *cobra.Command, g *globalOptions, o *deckOptions) error {
	if err := checkFormat(o.format); err != nil {
		return err
	}

	priority, err := models.ParseFunctionList(o.sort)
	if err != nil {
		return errors.Wrap(err, "parse --sort")
	}
	if len(priority) > viewstate.MaxSortPriority {
		g.log.Info("sort priority truncated",
			zap.Int("given", len(priority)),
			zap.Int("kept", viewstate.MaxSortPriority))
	}
	if typefilter.Adjusted(o.filter) {
		g.log.Info("filter normalized",
			zap.String("raw", o.filter),
			zap.String("canonical", typefilter.Normalize(o.filter)))
	}

	st := viewstate.New(o.filter).WithSortPriority(priority)
	out, err := buildDeckOutput(st, o.hide)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if o.format != formatTable {
		return writeStructured(w, o.format, out)
	}
	return writeTable(w, deckTable(st, out, o.hide))
}

func buildDeckOutput(st viewstate.State, hide bool) (deckOutput, error) {
	priority := st.SortPriority()
	out := deckOutput{
		Filter: st.Filter(),
		Sort:   make([]string, len(priority)),
		Types:  []deckRow{},
	}
	for i, f := range priority {
		out.Sort[i] = f.String()
	}

	for _, t := range st.VisibleTypes() {
		rank, err := ranking.RankOf(priority, t)
		if err != nil {
			return deckOutput{}, errors.Wrapf(err, "rank %s", t)
		}
		row := deckRow{Type: t.String(), Rank: rank}
		if !hide {
			stack, err := models.FunctionsOf(t)
			if err != nil {
				return deckOutput{}, err
			}
			row.Functions = make([]string, len(stack))
			for i, f := range stack {
				row.Functions[i] = f.String()
			}
		}
		out.Types = append(out.Types, row)
	}
	return out, nil
}

func deckTable(st viewstate.State, out deckOutput, hide bool) pterm.TableData {
	header := []string{"Type"}
	for i := 1; i <= models.FunctionsPerType; i++ {
		header = append(header, strconv.Itoa(i))
	}
	header = append(header, "Rank")
	data := pterm.TableData{header}

	for _, row := range out.Types {
		line := []string{pterm.Bold.Sprint(row.Type)}
		if hide {
			for i := 0; i < models.FunctionsPerType; i++ {
				line = append(line, hiddenLabel)
			}
		} else {
			for _, f := range row.Functions {
				line = append(line, styleFunction(st, models.FunctionCode(f)))
			}
		}
		line = append(line, strconv.Itoa(row.Rank))
		data = append(data, line)
	}
	return data
}

// styleFunction highlights sort keys: first priority cyan, second magenta.
func styleFunction(st viewstate.State, f models.FunctionCode) string {
	switch st.SortRank(f) {
	case 1:
		return pterm.LightCyan(f.String())
	case 2:
		return pterm.LightMagenta(f.String())
	default:
		return f.String()
	}
}

// joinTypes renders types for log fields.
func joinTypes(ts []models.TypeCode) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, ",")
}
