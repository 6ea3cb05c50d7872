// Package harness runs scripted interval and date scenarios.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: unit_equivalences
//	description: "1 minute plus 30 seconds"
//	now: 978307200   # optional, Unix seconds
//	steps:
//	  - op: add
//	    left: 1 minutes
//	    right: 30 seconds
//	    as: milliseconds
//	    expect: 90000 milliseconds
//	  - op: compare
//	    left: 1 hours
//	    right: 59 minutes
//	    expect: ">"
//	  - op: shift
//	    left: 1 days
//	    base: reference
//	    expect: "2001-01-02 00:00:00 +0000"
//
// Unknown fields are rejected.
//
// # Operations
//
//   - convert: Left re-expressed in As
//   - add, sub, mul, div, rem: Left op Right in As (default: the unit of Left)
//   - compare: "<", "==" or ">"
//   - shift: Base plus Left, printed as a date
//   - since: offset of date Left from date Base in As (default: seconds)
//   - advance: moves the clock forward by Left and prints the new now
//
// Dates are now, unix, reference, distant_future, distant_past or a count of
// Unix seconds.
//
// # Deterministic Testing
//
// The clock is fixed per scenario (testutil.Clock), so traces are identical
// across runs and can be compared with golden files:
//
//	result, err := harness.RunWithGolden(t, scenario)
package harness
