// Command chrono converts, compares and combines time intervals and dates.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/chrono/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		// Commands print their own errors; report the rest (usage, config).
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) || exitErr.Err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}
	os.Exit(cli.GetExitCode(err))
}
