package harness

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/chrono/internal/parse"
	"github.com/roach88/chrono/internal/testutil"
	"github.com/roach88/chrono/interval"
)

// Scenario is a scripted sequence of interval and date operations with
// expected results.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario checks.
	Description string `yaml:"description"`

	// Now fixes the clock, in Unix seconds. Defaults to the reference epoch.
	Now *int64 `yaml:"now,omitempty"`

	// Steps run in order against a shared clock.
	Steps []Step `yaml:"steps"`
}

// Step is one operation and its expected outcome.
type Step struct {
	// Op is one of the Op* constants.
	Op string `yaml:"op"`

	// Left is an interval such as "1 minutes", or a date name for OpSince.
	Left string `yaml:"left"`

	// Right is the second interval of a binary op.
	Right string `yaml:"right,omitempty"`

	// Base is the date OpShift and OpSince measure from. Defaults to "now".
	Base string `yaml:"base,omitempty"`

	// As is the result unit. Arithmetic defaults to the unit of Left,
	// OpSince to seconds. Required for OpConvert.
	As string `yaml:"as,omitempty"`

	// Expect is the expected result: an interval, a comparison symbol
	// ("<", "==", ">") or a date as printed by date.Date.String.
	// An empty Expect records the result without checking it.
	Expect string `yaml:"expect,omitempty"`

	// Tolerance is the relative tolerance for interval results.
	// Zero requires an exact match.
	Tolerance float64 `yaml:"tolerance,omitempty"`
}

// Step operations.
const (
	OpConvert = "convert"
	OpAdd     = "add"
	OpSub     = "sub"
	OpMul     = "mul"
	OpDiv     = "div"
	OpRem     = "rem"
	OpCompare = "compare"
	OpShift   = "shift"
	OpSince   = "since"
	OpAdvance = "advance"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or fails validation.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and that every
// interval, unit and date in the steps parses.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if err := validateStep(step); err != nil {
			return fmt.Errorf("steps[%d]: %w", i, err)
		}
	}
	return nil
}

func validateStep(step Step) error {
	if step.Tolerance < 0 {
		return fmt.Errorf("tolerance must be non-negative")
	}
	if step.As != "" {
		if _, err := parse.Kind(step.As); err != nil {
			return err
		}
	}
	if step.Expect != "" && producesInterval(step.Op) {
		if _, err := parse.Interval(step.Expect); err != nil {
			return fmt.Errorf("expect: %w", err)
		}
	}

	switch step.Op {
	case OpConvert:
		if step.As == "" {
			return fmt.Errorf("as is required for convert")
		}
		return requireIntervals(step.Left)
	case OpAdd, OpSub, OpMul, OpDiv, OpRem, OpCompare:
		if err := requireIntervals(step.Left, step.Right); err != nil {
			return err
		}
		if step.Op == OpCompare && step.Expect != "" {
			if _, ok := comparisonResults[step.Expect]; !ok {
				return fmt.Errorf("compare expects one of <, ==, >; got %q", step.Expect)
			}
		}
		return nil
	case OpShift:
		if err := requireIntervals(step.Left); err != nil {
			return err
		}
		return requireDates(step.Base)
	case OpSince:
		if step.Left == "" {
			return fmt.Errorf("left is required")
		}
		return requireDates(step.Left, step.Base)
	case OpAdvance:
		if err := requireIntervals(step.Left); err != nil {
			return err
		}
		v, _ := parse.Interval(step.Left)
		_, err := advanceDuration(v)
		return err
	case "":
		return fmt.Errorf("op is required")
	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}
}

func producesInterval(op string) bool {
	switch op {
	case OpConvert, OpAdd, OpSub, OpMul, OpDiv, OpRem, OpSince:
		return true
	}
	return false
}

func requireIntervals(values ...string) error {
	for _, v := range values {
		if v == "" {
			return fmt.Errorf("interval operand is required")
		}
		if _, err := parse.Interval(v); err != nil {
			return err
		}
	}
	return nil
}

func requireDates(values ...string) error {
	clock := testutil.NewUnixClock(0)
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, err := parse.Date(v, clock); err != nil {
			return err
		}
	}
	return nil
}

// advanceDuration converts a clock advance to a time.Duration. The advance
// must be finite and fit in a Duration, about 292 years either way.
func advanceDuration(v interval.Interval) (time.Duration, error) {
	ns := math.Round(float64(interval.To[interval.Nanoseconds](v)))
	if math.IsNaN(ns) || math.IsInf(ns, 0) {
		return 0, fmt.Errorf("advance %s is not finite", v)
	}
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
	if ns >= float64(math.MaxInt64) || ns < float64(math.MinInt64) {
		return 0, fmt.Errorf("advance %s is out of range", v)
	}
	return time.Duration(ns), nil
}
