package session

import "github.com/ayoisaiah/werk/internal/apperr"

var (
	ErrAlreadyActive = &apperr.Error{
		Message: "a work session is already active (started at %s): run 'werk stop' first",
		Code:    apperr.ExitAlreadyActive,
	}

	ErrNotActive = &apperr.Error{
		Message: "no active work session",
		Code:    apperr.ExitNotActive,
	}

	// ErrStopCancelled is returned when the operator declines to stop a
	// session early. Nothing has changed on disk.
	ErrStopCancelled = &apperr.Error{
		Message: "stop cancelled: the session is still running",
	}

	errNoProject = &apperr.Error{
		Message: "unable to determine a project to bind: pass one explicitly",
	}

	errParseSessionCmd = &apperr.Error{
		Message: "unable to parse session_cmd option",
	}
)
