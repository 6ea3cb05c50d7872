package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/chrono/internal/parse"
	"github.com/roach88/chrono/interval"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	To string // target unit; empty converts to all eight
}

// UnitValue is an interval rendered in one unit.
type UnitValue struct {
	Unit  string `json:"unit"`
	Value string `json:"value"`
}

// ConvertResult is the output of convert.
type ConvertResult struct {
	Input  string      `json:"input"`
	Values []UnitValue `json:"values"`
}

func (r ConvertResult) String() string {
	lines := make([]string, len(r.Values))
	for i, v := range r.Values {
		lines[i] = v.Value
	}
	return strings.Join(lines, "\n")
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Re-express an interval in other units",
		Long: `Re-express an interval in one unit, or in all eight when --to is omitted.

Examples:
  chrono convert 4.5m
  chrono convert 90 seconds --to minutes
  chrono convert 250µs --to ns --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, strings.Join(args, " "), cmd)
		},
	}

	cmd.Flags().StringVar(&opts.To, "to", "", "target unit (default: every unit)")

	return cmd
}

func runConvert(opts *ConvertOptions, input string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	v, err := parse.Interval(input)
	if err != nil {
		return argumentError(formatter, err)
	}

	kinds := interval.Kinds()
	if opts.To != "" {
		k, err := parse.Kind(opts.To)
		if err != nil {
			return argumentError(formatter, err)
		}
		kinds = []interval.Kind{k}
	}

	result := ConvertResult{Input: v.String()}
	for _, k := range kinds {
		result.Values = append(result.Values, UnitValue{Unit: k.Name(), Value: k.Convert(v).String()})
	}

	formatter.VerboseLog("converted %s to %d unit(s)", v, len(kinds))
	return formatter.Success(result)
}
