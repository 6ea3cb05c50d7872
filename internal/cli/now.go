package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/chrono/date"
	"github.com/roach88/chrono/interval"
)

// NowOptions holds flags for the now command.
type NowOptions struct {
	*RootOptions
	Since string // "reference" or "unix"
	Unit  string // offset unit; empty uses the configured unit
}

// NowResult is the output of now.
type NowResult struct {
	Date   string `json:"date"`
	Since  string `json:"since"`
	Offset string `json:"offset"`
}

func (r NowResult) String() string {
	return fmt.Sprintf("%s (%s since %s epoch)", r.Date, r.Offset, r.Since)
}

// NewNowCommand creates the now command.
func NewNowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NowOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current date and its offset from an epoch",
		Long: `Print the current date and its offset from the reference epoch
(2001-01-01 00:00:00 UTC) or the Unix epoch.

Examples:
  chrono now
  chrono now --since unix --unit days`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNow(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Since, "since", "reference", "epoch to measure from (reference|unix)")
	cmd.Flags().StringVar(&opts.Unit, "unit", "", "offset unit (default: configured unit)")

	return cmd
}

func runNow(opts *NowOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	k, err := resultKind(opts.RootOptions, opts.Unit)
	if err != nil {
		return argumentError(formatter, err)
	}

	now := date.NowFrom(opts.clock())

	var offset interval.Seconds
	switch opts.Since {
	case "reference":
		offset = now.SinceReference()
	case "unix":
		offset = now.SinceUnixEpoch()
	default:
		return formatter.fail(ExitCommandError, ErrCodeBadArgument,
			fmt.Sprintf("invalid --since %q: must be reference or unix", opts.Since), nil)
	}

	return formatter.Success(NowResult{
		Date:   now.String(),
		Since:  opts.Since,
		Offset: k.Convert(offset).String(),
	})
}
