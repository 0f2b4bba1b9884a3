package cli

import (
	"errors"

	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/pagination"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitOutOfRange  = 2
	ExitConfigError = 3
)

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	var rangeErr *pagination.RangeError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &rangeErr):
		return ExitOutOfRange
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitConfigError
	default:
		return ExitFailure
	}
}
