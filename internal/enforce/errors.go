package enforce

import "github.com/ayoisaiah/werk/internal/apperr"

var (
	ErrBreakRequired = &apperr.Error{
		Message: "a %s break is required before starting a new session: run 'werk break'",
		Code:    apperr.ExitBreakRequired,
	}

	ErrProjectBlocked = &apperr.Error{
		Message: "switching from %s to %s is blocked in strict mode",
		Code:    apperr.ExitProjectBlocked,
	}

	ErrInvalidMode = &apperr.Error{
		Message: "invalid enforcement mode %q: must be one of off, coaching, moderate, strict",
		Code:    apperr.ExitInvalidMode,
	}
)
