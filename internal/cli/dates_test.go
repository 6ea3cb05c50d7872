package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/chrono/internal/testutil"
)

func TestNowCommand(t *testing.T) {
	out, err := execute(t, "now")
	require.NoError(t, err)
	assert.Equal(t, "2023-11-14 22:13:20 +0000 (721692800 seconds since reference epoch)\n", out)
}

func TestNowCommand_UnixInDays(t *testing.T) {
	clock := testutil.NewUnixClock(86400 * 3)
	buf := &bytes.Buffer{}
	cmd := NewNowCommand(&RootOptions{Format: "json", Clock: clock})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--since", "unix", "--unit", "d"})
	require.NoError(t, cmd.Execute())

	var resp struct {
		Data NowResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, NowResult{Date: "1970-01-04 00:00:00 +0000", Since: "unix", Offset: "3 days"}, resp.Data)
}

func TestNowCommand_UnitAliasThroughRoot(t *testing.T) {
	tests := []struct {
		unit string
		want string
	}{
		{"d", "2023-11-14 22:13:20 +0000 (8352.925925925925 days since reference epoch)\n"},
		{"minute", "2023-11-14 22:13:20 +0000 (12028213.333333334 minutes since reference epoch)\n"},
		{"Minutes", "2023-11-14 22:13:20 +0000 (12028213.333333334 minutes since reference epoch)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			out, err := execute(t, "now", "--unit", tt.unit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestNowCommand_UnknownUnit(t *testing.T) {
	_, err := execute(t, "now", "--unit", "fortnights")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestNowCommand_InvalidSince(t *testing.T) {
	_, err := execute(t, "now", "--since", "big-bang")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestShiftCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"from now", []string{"shift", "90m"}, "2023-11-14 23:43:20 +0000"},
		{"from reference", []string{"shift", "1", "weeks", "--from", "reference"}, "2001-01-08 00:00:00 +0000"},
		{"from unix seconds", []string{"shift", "1d", "--from", "0"}, "1970-01-02 00:00:00 +0000"},
		{"backwards", []string{"shift", "--from", "unix", "--", "-1h"}, "1969-12-31 23:00:00 +0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestShiftCommand_JSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "shift", "1d", "--from", "reference")
	require.NoError(t, err)

	var resp struct {
		Data ShiftResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, ShiftResult{
		From:        "2001-01-01 00:00:00 +0000",
		Offset:      "1 days",
		Date:        "2001-01-02 00:00:00 +0000",
		UnixSeconds: "978393600 seconds",
	}, resp.Data)
}

func TestShiftCommand_BadFrom(t *testing.T) {
	out, err := execute(t, "shift", "1d", "--from", "yesterday")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E002]")
}
