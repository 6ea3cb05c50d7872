package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/chrono/internal/parse"
)

// ShiftOptions holds flags for the shift command.
type ShiftOptions struct {
	*RootOptions
	From string // date name or unix seconds
}

// ShiftResult is the output of shift.
type ShiftResult struct {
	From        string `json:"from"`
	Offset      string `json:"offset"`
	Date        string `json:"date"`
	UnixSeconds string `json:"unix_seconds"`
}

func (r ShiftResult) String() string {
	return r.Date
}

// NewShiftCommand creates the shift command.
func NewShiftCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShiftOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "shift <interval>",
		Short: "Offset a date by an interval",
		Long: `Print the date an interval away from --from, which is now, unix,
reference, distant_future, distant_past or a count of Unix seconds.

Examples:
  chrono shift 3d
  chrono shift 1 weeks --from reference
  chrono shift -- -90m --from 1700000000`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShift(opts, strings.Join(args, " "), cmd)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", parse.DateNow, "date to shift from")

	return cmd
}

func runShift(opts *ShiftOptions, input string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	offset, err := parse.Interval(input)
	if err != nil {
		return argumentError(formatter, err)
	}
	from, err := parse.Date(opts.From, opts.clock())
	if err != nil {
		return argumentError(formatter, err)
	}

	shifted := from.Add(offset)
	formatter.VerboseLog("shifting %s by %s", from, offset)

	return formatter.Success(ShiftResult{
		From:        from.String(),
		Offset:      offset.String(),
		Date:        shifted.String(),
		UnixSeconds: shifted.SinceUnixEpoch().String(),
	})
}
