package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/chrono/internal/parse"
	"github.com/roach88/chrono/interval"
)

// CompareResult is the output of compare.
type CompareResult struct {
	Left  string `json:"left"`
	Right string `json:"right"`
	Order string `json:"order"` // "<", "==" or ">"
}

func (r CompareResult) String() string {
	return r.Order
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <left> <right>",
		Short: "Order two intervals",
		Long: `Print <, == or > as the left interval is shorter than, equal to or
longer than the right one. Units may differ.

Example:
  chrono compare 90s 1.5m`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runCompare(opts *RootOptions, leftArg, rightArg string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	left, err := parse.Interval(leftArg)
	if err != nil {
		return argumentError(formatter, err)
	}
	right, err := parse.Interval(rightArg)
	if err != nil {
		return argumentError(formatter, err)
	}

	order := "=="
	switch interval.CompareValues(left, right) {
	case -1:
		order = "<"
	case 1:
		order = ">"
	}

	return formatter.Success(CompareResult{
		Left:  left.String(),
		Right: right.String(),
		Order: order,
	})
}
