package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

//go:embed schema.cue
var schemaSource string

// EnvPrefix prefixes environment overrides, e.g. CHRONO_FORMAT=json.
const EnvPrefix = "CHRONO"

// DefaultDotEnvFile is read when present.
const DefaultDotEnvFile = ".env"

// keys are the settings a flag of the same name (underscores as dashes)
// may override.
var keys = []string{"format", "unit", "location", "first_weekday", "tolerance", "trace", "verbose"}

// Options controls where Load looks for settings.
type Options struct {
	// ConfigFile is an optional CUE file validated against the embedded schema.
	ConfigFile string
	// DotEnvFile is an optional .env file. A missing file is not an error.
	DotEnvFile string
	// Flags are consulted for keys whose flag was set on the command line.
	Flags *pflag.FlagSet
}

// Load resolves settings. Later sources win:
// defaults, config file, environment (.env included), flags.
func Load(opts Options) (*Config, error) {
	if err := loadDotEnv(opts.DotEnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		values, err := readCUE(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		if err := v.MergeConfigMap(values); err != nil {
			return nil, fmt.Errorf("failed to merge config file: %w", err)
		}
	}

	if opts.Flags != nil {
		for _, key := range keys {
			flag := opts.Flags.Lookup(strings.ReplaceAll(key, "_", "-"))
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %q: %w", flag.Name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("format", d.Format)
	v.SetDefault("unit", d.Unit)
	v.SetDefault("location", d.Location)
	v.SetDefault("first_weekday", d.FirstWeekday)
	v.SetDefault("tolerance", d.Tolerance)
	v.SetDefault("trace", d.Trace)
	v.SetDefault("verbose", d.Verbose)
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// readCUE compiles a config file, checks it against #Config and returns its
// fields.
func readCUE(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue")).LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("config schema: %w", err)
	}

	file := ctx.CompileBytes(data, cue.Filename(path))
	if err := file.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	merged := schema.Unify(file)
	if err := merged.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	values := make(map[string]any)
	if err := merged.Decode(&values); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}
	return values, nil
}
