package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/chrono/internal/parse"
	"github.com/roach88/chrono/interval"
)

// CalcOptions holds flags for the calc command.
type CalcOptions struct {
	*RootOptions
	As string // result unit; empty uses the configured unit
}

// CalcResult is the output of calc.
type CalcResult struct {
	Left   string `json:"left"`
	Op     string `json:"op"`
	Right  string `json:"right"`
	Result string `json:"result"`
}

func (r CalcResult) String() string {
	return r.Result
}

var calcOps = map[string]func(k interval.Kind, a, b interval.Interval) interval.Interval{
	"+": interval.Kind.Add,
	"-": interval.Kind.Sub,
	"*": interval.Kind.Mul,
	"/": interval.Kind.Div,
	"%": interval.Kind.Rem,
}

// NewCalcCommand creates the calc command.
func NewCalcCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CalcOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "calc <left> <op> <right>",
		Short: "Combine two intervals",
		Long: `Combine two intervals of any units with + - * / or %.

Both operands are converted through seconds unless they already share the
result unit. The result unit is --as, or the configured unit.
Put -- before a negative left operand.

Examples:
  chrono calc 1m + 30s --as ms
  chrono calc 2h % 45m --as minutes
  chrono calc -- -1h + 90m`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(opts, args[0], args[1], args[2], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.As, "as", "", "result unit (default: configured unit)")

	return cmd
}

func runCalc(opts *CalcOptions, leftArg, op, rightArg string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	apply, ok := calcOps[op]
	if !ok {
		return formatter.fail(ExitCommandError, ErrCodeBadArgument,
			fmt.Sprintf("unknown operator %q: must be one of + - * / %%", op), nil)
	}

	left, err := parse.Interval(leftArg)
	if err != nil {
		return argumentError(formatter, err)
	}
	right, err := parse.Interval(rightArg)
	if err != nil {
		return argumentError(formatter, err)
	}

	k, err := resultKind(opts.RootOptions, opts.As)
	if err != nil {
		return argumentError(formatter, err)
	}

	result := apply(k, left, right)
	formatter.VerboseLog("%s %s %s in %s", left, op, right, k)

	return formatter.Success(CalcResult{
		Left:   left.String(),
		Op:     op,
		Right:  right.String(),
		Result: result.String(),
	})
}

// resultKind parses unit, falling back to the configured unit.
func resultKind(opts *RootOptions, unit string) (interval.Kind, error) {
	if unit != "" {
		return parse.Kind(unit)
	}
	cfg := opts.settings()
	return cfg.Kind()
}
