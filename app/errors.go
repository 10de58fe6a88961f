package app

import "github.com/ayoisaiah/werk/internal/apperr"

var (
	errInitPaths = &apperr.Error{
		Message: "unable to set up the werk directories",
		Code:    apperr.ExitSystemError,
	}

	errOpenStore = &apperr.Error{
		Message: "unable to open the werk database",
		Code:    apperr.ExitSystemError,
	}

	errUnsupportedShell = &apperr.Error{
		Message: "unsupported shell %q: must be one of bash, zsh",
	}

	errInvalidBreakType = &apperr.Error{
		Message: "invalid break type %q: must be short or long",
	}

	errInvalidBreakDuration = &apperr.Error{
		Message: "invalid break duration %q",
	}

	errInvalidRange = &apperr.Error{
		Message: "the start date (%s) must come before the end date (%s)",
	}
)
