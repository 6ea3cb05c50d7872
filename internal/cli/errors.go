package cli

import (
	"errors"

	"github.com/roach88/chrono/internal/parse"
)

// Error codes for CLI responses.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeBadArgument = "E002" // Argument could not be parsed
	ErrCodeConfig      = "E003" // Configuration could not be loaded
	ErrCodeNotFound    = "E005" // Path not found

	ErrCodeInvalidInstant = "E201" // Civil fields describe no instant

	ErrCodeScenarioFailed = "E302" // One or more scenarios failed
)

// argumentError reports a bad command-line argument with E002 and exit 2.
func argumentError(f *OutputFormatter, err error) error {
	var details any
	var perr *parse.Error
	if errors.As(err, &perr) {
		details = map[string]string{"input": perr.Input}
	}
	return f.fail(ExitCommandError, ErrCodeBadArgument, err.Error(), details)
}
