package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/chrono/internal/parse"
)

// ComponentsOptions holds flags for the components command.
type ComponentsOptions struct {
	*RootOptions
	At string // date name or unix seconds
}

// ComponentsResult is the output of components.
type ComponentsResult struct {
	Date       string         `json:"date"`
	Location   string         `json:"location"`
	Components map[string]int `json:"components"`
	text       string
}

func (r ComponentsResult) String() string {
	return fmt.Sprintf("%s in %s\n%s", r.Date, r.Location, r.text)
}

// NewComponentsCommand creates the components command.
func NewComponentsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ComponentsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "components",
		Short: "Break a date into civil calendar fields",
		Long: `Print the Gregorian calendar fields of a date in the configured
location: era, year, month, day, time of day, weekday (1 = Sunday), weekday
ordinal, quarter, week of month, and ISO week of year.

Examples:
  chrono components
  chrono components --at reference
  CHRONO_LOCATION=Asia/Tokyo chrono components --at 1700000000`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComponents(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.At, "at", parse.DateNow, "date to decompose")

	return cmd
}

func runComponents(opts *ComponentsOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	cal, err := opts.calendar()
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeConfig, err.Error(), nil)
	}

	at, err := parse.Date(opts.At, cal)
	if err != nil {
		return argumentError(formatter, err)
	}

	comp := cal.Decompose(at)
	return formatter.Success(ComponentsResult{
		Date:       at.String(),
		Location:   cal.Location().String(),
		Components: comp.Map(),
		text:       comp.String(),
	})
}
