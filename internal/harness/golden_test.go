package harness

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Regenerate with: go test ./internal/harness -run Golden -update
func TestRunWithGolden_Scenarios(t *testing.T) {
	for _, name := range []string{"unit_equivalences", "date_offsets"} {
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario("testdata/scenarios/" + name + ".yaml")
			require.NoError(t, err)

			result, err := RunWithGolden(t, scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, result.Errors)
		})
	}
}

func TestAssertGolden_ExistingResult(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/unit_equivalences.yaml")
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)
	require.NoError(t, AssertGolden(t, "unit_equivalences", result))
}

func TestMarshalTrace_DoesNotEscapeSymbols(t *testing.T) {
	result := NewResult()
	result.AddTrace(TraceEvent{Seq: 1, Op: OpCompare, Left: "1 seconds", Right: "2 seconds", Result: "<", Pass: true})

	data, err := MarshalTrace("symbols", result)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"result": "<"`)
	assert.True(t, strings.HasSuffix(s, "}\n"))
	assert.NotContains(t, s, `\u003c`)
}
