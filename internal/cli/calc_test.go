package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"sum in milliseconds", []string{"1m", "+", "30s", "--as", "ms"}, "90000 milliseconds"},
		{"difference", []string{"1h", "-", "30m", "--as", "s"}, "1800 seconds"},
		{"product", []string{"2m", "*", "3s", "--as", "s"}, "360 seconds"},
		{"quotient", []string{"1h", "/", "30m", "--as", "s"}, "2 seconds"},
		{"remainder", []string{"2h", "%", "45m", "--as", "minutes"}, "30 minutes"},
		{"default unit is seconds", []string{"1m", "+", "1m"}, "120 seconds"},
		{"negative left", []string{"--as", "m", "--", "-55m", "+", "1h"}, "5 minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			cmd := NewCalcCommand(&RootOptions{Format: "text"})
			cmd.SetOut(buf)
			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.want+"\n", buf.String())
		})
	}
}

func TestCalcCommand_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewCalcCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"1d", "+", "12h", "--as", "days"})
	require.NoError(t, cmd.Execute())

	var resp struct {
		Data CalcResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, CalcResult{Left: "1 days", Op: "+", Right: "12 hours", Result: "1.5 days"}, resp.Data)
}

func TestCalcCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown operator", []string{"1m", "^", "2m"}, "unknown operator"},
		{"bad left", []string{"1 parsec", "+", "2m"}, "unknown unit"},
		{"bad right", []string{"1m", "+", "two"}, "expected <number><unit>"},
		{"bad unit", []string{"1m", "+", "2m", "--as", "eons"}, "unknown unit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			cmd := NewCalcCommand(&RootOptions{Format: "text"})
			cmd.SetOut(buf)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestCompareCommand(t *testing.T) {
	tests := []struct {
		left, right string
		want        string
	}{
		{"90s", "1.5m", "=="},
		{"59m", "1h", "<"},
		{"1d", "23h", ">"},
		{"1000ms", "1s", "=="},
	}

	for _, tt := range tests {
		t.Run(tt.left+" vs "+tt.right, func(t *testing.T) {
			out, err := execute(t, "compare", tt.left, tt.right)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestCompareCommand_JSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "compare", "1w", "7d")
	require.NoError(t, err)

	var resp struct {
		Data CompareResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, CompareResult{Left: "1 weeks", Right: "7 days", Order: "=="}, resp.Data)
}

func TestCompareCommand_ArgCount(t *testing.T) {
	_, err := execute(t, "compare", "1s")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg")
}
