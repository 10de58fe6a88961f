package timer

import "github.com/ayoisaiah/werk/internal/apperr"

var (
	errSpawn = &apperr.Error{
		Message: "unable to start background process",
		Code:    apperr.ExitSystemError,
	}

	errCancelTimer = &apperr.Error{
		Message: "unable to cancel timer process %s",
	}

	errTimerNotFound = &apperr.Error{
		Message: "no timer is running for session %s",
	}
)
