package harness

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap"

	"github.com/roach88/chrono/date"
	"github.com/roach88/chrono/internal/logging"
	"github.com/roach88/chrono/internal/parse"
	"github.com/roach88/chrono/internal/testutil"
	"github.com/roach88/chrono/interval"
)

// DefaultNow is the clock reading, in Unix seconds, for scenarios that do
// not set one. It is the reference epoch.
const DefaultNow int64 = 978307200

var comparisonResults = map[string]int{"<": -1, "==": 0, ">": 1}

var comparisonSymbols = map[int]string{-1: "<", 0: "==", 1: ">"}

// Harness is the step execution engine.
// Every scenario gets a fresh Harness whose clock only moves on advance steps.
type Harness struct {
	clock     *testutil.Clock
	logger    *zap.Logger
	tolerance float64
	seq       int64
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger that receives one debug entry per step.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Harness) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithDefaultTolerance sets the relative tolerance for steps that leave
// tolerance unset. Negative values are ignored.
func WithDefaultTolerance(tolerance float64) Option {
	return func(h *Harness) {
		if tolerance >= 0 {
			h.tolerance = tolerance
		}
	}
}

// outcome is the value a step produced.
type outcome struct {
	rendered string
	// value is set when the step produced an interval.
	value interval.Interval
}

// Run executes a scenario and returns the result.
//
// A failed expectation is reported in the Result, not as an error.
// An error is returned only for a scenario that cannot run at all.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is nil")
	}
	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	now := DefaultNow
	if scenario.Now != nil {
		now = *scenario.Now
	}
	h := &Harness{
		clock:  testutil.NewUnixClock(now),
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}

	result := NewResult()
	for i, step := range scenario.Steps {
		h.seq++
		event := TraceEvent{
			Seq:   h.seq,
			Op:    step.Op,
			Left:  step.Left,
			Right: step.Right,
			Base:  step.Base,
			As:    step.As,
		}

		out, err := h.execute(step)
		if err == nil {
			event.Result = out.rendered
			err = h.check(step, out)
		}
		event.Pass = err == nil
		result.AddTrace(event)

		h.logger.Debug("step",
			zap.String("scenario", scenario.Name),
			zap.Int64("seq", event.Seq),
			zap.String("op", step.Op),
			zap.String("result", event.Result),
			zap.Bool("pass", event.Pass),
		)

		if err != nil {
			result.AddError(fmt.Sprintf("steps[%d] %s: %v", i, step.Op, err))
		}
	}

	return result, nil
}

func (h *Harness) execute(step Step) (outcome, error) {
	switch step.Op {
	case OpConvert:
		v, err := parse.Interval(step.Left)
		if err != nil {
			return outcome{}, err
		}
		k, err := parse.Kind(step.As)
		if err != nil {
			return outcome{}, err
		}
		return intervalOutcome(k.Convert(v)), nil

	case OpAdd, OpSub, OpMul, OpDiv, OpRem:
		left, right, err := operands(step)
		if err != nil {
			return outcome{}, err
		}
		k, err := resultKind(step.As, left.Kind())
		if err != nil {
			return outcome{}, err
		}
		var v interval.Interval
		switch step.Op {
		case OpAdd:
			v = k.Add(left, right)
		case OpSub:
			v = k.Sub(left, right)
		case OpMul:
			v = k.Mul(left, right)
		case OpDiv:
			v = k.Div(left, right)
		case OpRem:
			v = k.Rem(left, right)
		}
		return intervalOutcome(v), nil

	case OpCompare:
		left, right, err := operands(step)
		if err != nil {
			return outcome{}, err
		}
		return outcome{rendered: comparisonSymbols[interval.CompareValues(left, right)]}, nil

	case OpShift:
		v, err := parse.Interval(step.Left)
		if err != nil {
			return outcome{}, err
		}
		base, err := h.date(step.Base)
		if err != nil {
			return outcome{}, err
		}
		return outcome{rendered: base.Add(v).String()}, nil

	case OpSince:
		d, err := h.date(step.Left)
		if err != nil {
			return outcome{}, err
		}
		base, err := h.date(step.Base)
		if err != nil {
			return outcome{}, err
		}
		k, err := resultKind(step.As, interval.Second)
		if err != nil {
			return outcome{}, err
		}
		return intervalOutcome(k.Convert(d.Since(base))), nil

	case OpAdvance:
		v, err := parse.Interval(step.Left)
		if err != nil {
			return outcome{}, err
		}
		d, err := advanceDuration(v)
		if err != nil {
			return outcome{}, err
		}
		h.clock.Advance(d)
		return outcome{rendered: date.NowFrom(h.clock).String()}, nil
	}

	return outcome{}, fmt.Errorf("unknown op %q", step.Op)
}

// date resolves a date name against the harness clock. Empty means now.
func (h *Harness) date(name string) (date.Date, error) {
	if name == "" {
		name = parse.DateNow
	}
	return parse.Date(name, h.clock)
}

func operands(step Step) (interval.Interval, interval.Interval, error) {
	left, err := parse.Interval(step.Left)
	if err != nil {
		return nil, nil, err
	}
	right, err := parse.Interval(step.Right)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func resultKind(as string, fallback interval.Kind) (interval.Kind, error) {
	if as == "" {
		return fallback, nil
	}
	return parse.Kind(as)
}

func intervalOutcome(v interval.Interval) outcome {
	return outcome{rendered: v.String(), value: v}
}

// check compares a step's outcome with its expectation.
func (h *Harness) check(step Step, out outcome) error {
	if step.Expect == "" {
		return nil
	}

	if out.value == nil {
		if out.rendered != step.Expect {
			return fmt.Errorf("expected %s, got %s", step.Expect, out.rendered)
		}
		return nil
	}

	want, err := parse.Interval(step.Expect)
	if err != nil {
		return fmt.Errorf("invalid expect: %w", err)
	}
	want = out.value.Kind().Convert(want)
	tolerance := step.Tolerance
	if tolerance == 0 {
		tolerance = h.tolerance
	}
	if !approxEqual(out.value.Magnitude(), want.Magnitude(), tolerance) {
		return fmt.Errorf("expected %s, got %s", step.Expect, out.rendered)
	}
	return nil
}

// approxEqual reports whether got is within a relative tolerance of want.
// NaN only matches NaN.
func approxEqual(got, want, tolerance float64) bool {
	return cmp.Equal(got, want, cmpopts.EquateApprox(tolerance, 0), cmpopts.EquateNaNs())
}
