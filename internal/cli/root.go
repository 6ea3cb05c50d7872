package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/chrono/calendar"
	"github.com/roach88/chrono/date"
	"github.com/roach88/chrono/internal/config"
	"github.com/roach88/chrono/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigFile string
	Trace      bool

	// Resolved before any subcommand runs. Commands fall back to defaults
	// when they are constructed without the root command.
	Config *config.Config
	Logger *zap.Logger
	Clock  date.Clock
}

// NewRootCommand creates the root command for the chrono CLI.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithOptions(&RootOptions{})
}

// NewRootCommandWithOptions creates the root command around opts, so callers
// can preset a Clock.
func NewRootCommandWithOptions(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chrono",
		Short: "chrono - typed time intervals and dates",
		Long: `Convert, compare and combine time intervals in eight units from
nanoseconds to weeks, and work with dates measured from the 2001-01-01
reference epoch.

Settings come from defaults, an optional CUE file (--config), a .env file,
CHRONO_* environment variables and flags, in increasing precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "CUE config file")
	cmd.PersistentFlags().BoolVar(&opts.Trace, "trace", false, "add a trace id to JSON responses")

	// Add subcommands
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewCalcCommand(opts))
	cmd.AddCommand(NewCompareCommand(opts))
	cmd.AddCommand(NewNowCommand(opts))
	cmd.AddCommand(NewShiftCommand(opts))
	cmd.AddCommand(NewComponentsCommand(opts))
	cmd.AddCommand(NewComposeCommand(opts))
	cmd.AddCommand(NewScenarioCommand(opts))

	return cmd
}

// resolve loads configuration and builds the logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(config.Options{
		ConfigFile: o.ConfigFile,
		DotEnvFile: config.DefaultDotEnvFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	o.Config = cfg
	o.Format = cfg.Format
	o.Verbose = cfg.Verbose
	o.Trace = cfg.Trace
	o.Logger = logging.New(logging.Options{Verbose: cfg.Verbose, Writer: cmd.ErrOrStderr()})
	if o.Clock == nil {
		o.Clock = date.SystemClock{}
	}

	o.Logger.Debug("configuration resolved",
		zap.String("format", cfg.Format),
		zap.String("unit", cfg.Unit),
		zap.String("location", cfg.Location),
		zap.String("first_weekday", cfg.FirstWeekday),
	)
	return nil
}

// settings returns the resolved configuration, or defaults carrying the
// flag values when the root command has not run.
func (o *RootOptions) settings() config.Config {
	if o.Config != nil {
		return *o.Config
	}
	cfg := config.Default()
	if o.Format != "" {
		cfg.Format = o.Format
	}
	cfg.Verbose = o.Verbose
	cfg.Trace = o.Trace
	return cfg
}

func (o *RootOptions) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.Nop()
}

func (o *RootOptions) clock() date.Clock {
	if o.Clock != nil {
		return o.Clock
	}
	return date.SystemClock{}
}

// formatter returns an OutputFormatter writing to the command's streams.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	cfg := o.settings()
	f := &OutputFormatter{
		Format:    cfg.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   cfg.Verbose,
		Logger:    o.Logger,
	}
	if cfg.Trace {
		f.TraceID = NewTraceID()
	}
	return f
}

// calendar builds the civil calendar for the configured location and first
// weekday.
func (o *RootOptions) calendar() (*calendar.Calendar, error) {
	cfg := o.settings()
	loc, err := cfg.LoadLocation()
	if err != nil {
		return nil, err
	}
	wd, err := cfg.Weekday()
	if err != nil {
		return nil, err
	}
	return calendar.New(
		calendar.WithLocation(loc),
		calendar.WithFirstWeekday(wd),
		calendar.WithClock(o.clock()),
	), nil
}
